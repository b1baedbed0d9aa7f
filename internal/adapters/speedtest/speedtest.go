// Package speedtest wraps the speedtest.net probe behind a small result
// type, so handlers only deal with formatted numbers.
package speedtest

import (
	"context"

	"github.com/pkg/errors"
	st "github.com/showwin/speedtest-go/speedtest"
)

type Result struct {
	ServerName string
	Latency    string
	Download   string
	Upload     string
}

// Run measures latency, download and upload against the closest
// speedtest.net server. It blocks for the duration of the probe, so callers
// run it off the update loop.
func Run(ctx context.Context) (*Result, error) {
	client := st.New()

	servers, err := client.FetchServerListContext(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "fetch server list")
	}
	targets, err := servers.FindServer([]int{})
	if err != nil {
		return nil, errors.WithMessage(err, "find server")
	}
	if len(targets) == 0 {
		return nil, errors.New("no speedtest servers available")
	}

	server := targets[0]
	if err := server.PingTestContext(ctx, nil); err != nil {
		return nil, errors.WithMessage(err, "ping test")
	}
	if err := server.DownloadTestContext(ctx); err != nil {
		return nil, errors.WithMessage(err, "download test")
	}
	if err := server.UploadTestContext(ctx); err != nil {
		return nil, errors.WithMessage(err, "upload test")
	}
	defer server.Context.Reset()

	return &Result{
		ServerName: server.Name,
		Latency:    server.Latency.String(),
		Download:   server.DLSpeed.String(),
		Upload:     server.ULSpeed.String(),
	}, nil
}
