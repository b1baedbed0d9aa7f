// Package texts holds the canned reply tables. Action tables carry a
// {target} placeholder that WithTarget fills with the resolved mention.
package texts

import (
	"math/rand/v2"
	"strings"
)

// Pick returns a uniformly random line from the list, or the empty string
// for an empty list.
func Pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.IntN(len(list))]
}

// WithTarget interpolates the target mention into an action line.
func WithTarget(line, mention string) string {
	return strings.ReplaceAll(line, "{target}", mention)
}

var Meow = []string{
	"Meow!", "Purrrr...", "Feed me, human!", "Where's my nap spot?", "Miaow?",
	"I require pets.", "Is that... tuna?", "Staring intently...",
	"*knocks something off the table*", "Mrow?", "Let me outside... no, wait, inside!",
	"I knead this blanket... and maybe your leg.", "The red dot! Where did it go?!",
	"Ignoring you is my cardio.", "Sleeping in a sunbeam.", "Bring me shiny things!",
	"My bowl is... tragically empty.", "Hiss! (Just kidding... maybe.)",
	"Presenting my belly... it's a trap!", "Zoomies commencing in 3... 2... 1...",
	"Prrrrt?", "Meow meow!", "Mrrrrraw!", "Did I hear the fridge open?",
	"I require attention. Immediately.", "Eeeeeek! (a mouse!)",
	"Just woke up from an 18-hour nap.", "Head boop!", "Did someone say... *treats*?",
	"You woke me up... now suffer.", "Your bed? Nope. Mine now.",
	"I knocked it over because I love you.", "I'm majestic. Worship me.",
	"I saw a bird once. Still not over it.", "This tail? It's trying to get me!",
	"You moved? Betrayal.", "I rule this house. You just live here.",
	"Don't touch the tummy. Seriously.", "No thoughts. Just meows.",
	"I meow, therefore I am.", "It's 3 AM. Let's party!", "I bring chaos and fur.",
	"My tail is alive!", "This box shrank... not me.",
	"Don't mind me, I'm just judging you.", "I demand tribute in the form of treats.",
	"Silently plotting your next nap spot.", "Attack the foot. Retreat. Repeat.",
}

var Nap = []string{
	"Zzzzz...", "Dreaming of chasing mice.", "Do not disturb the royal nap.",
	"Found the perfect sunbeam.", "Curled up in a tight ball.", "Too comfy to move.",
	"Just five more minutes... or hours.", "Sleeping level: Expert.",
	"Charging my batteries for zoomies.", "Is it nap time yet? Oh, it always is.",
	"Comfort is my middle name.", "Where's the warmest spot? That's where I am.",
	"Sleeping with one eye open.", "Purring on standby.", "Don't wake the sleeping beast!",
	"Do not poke the floof.", "Nap interrupted? Prepare for revenge.",
	"Dreaming of endless tuna buffet.", "This blanket is now a fortress.",
	"Shhh... dreaming of world domination.", "Soft spot detected. Initiating nap.",
	"Eyes closed. Thoughts: none.", "Current status: melted into the couch.",
	"If I fits, I naps.", "My snore is a lullaby.",
	"I changed position. That counts as exercise.", "Napping: a full-time job.",
	"Too tired to care. Still cute, though.", "Sleeping through the apocalypse.",
	"Nap goal: 16 hours achieved.", "Stretched once. Exhausting.",
	"Curled like a croissant.", "Horizontal and proud of it.",
}

var Play = []string{
	"*Batting at an invisible speck*", "Attack the dangly thing!", "Where's the string?",
	"Pounce!", "Wrestling the toy mouse... I WON!", "Hide and seek? I'm under the couch.",
	"My hunting instincts are tingling.", "Chasing my own tail!",
	"Got the zoomies - must play!", "Do I hear a crinkle ball?",
	"Ambush from around the corner!", "Hunting your feet under the covers.",
	"This toy insulted my ancestors. It must perish.", "Curtain climbing commencing!",
	"Bring the wand toy!", "That sock looked at me funny.",
	"Time to sprint at full speed, no reason.", "*Pounces dramatically, misses*",
	"I'm a fierce jungle predator. Fear me!", "Couch? More like launchpad!",
	"Tag, you're it!", "Sneak... sneak... POUNCE!",
	"Everything is a toy if you're brave enough.", "Why walk when you can leap?",
	"The toy moved. Or did it?", "*tail flick* Battle begins.",
	"Your pen? Mine now.", "Under the bed is my battle arena.",
	"I'm training for the Cat Olympics.", "This paper bag is my kingdom.",
	"Sneaky mode: activated.", "I fight shadows for dominance.",
	"Don't blink. You'll miss my backflip.",
}

var Treat = []string{
	"Treats, please!", "My bowl echoes with emptiness.", "Did you say... *tuna*?",
	"I performed a cute trick, where's my reward?",
	"I can hear the treat bag rustling from three rooms away.", "Feed me, peasant!",
	"A snack would be purrfect.", "The fastest way to my heart is through my stomach.",
	"Just a little nibble? Pleeeease?",
	"Staring at you with big, cute eyes... until you give me a treat.",
	"Does that cupboard contain treats? Must investigate.",
	"My internal clock says it's snack time.",
	"In exchange for a treat, I shall allow you to pet me. Maybe.", "Food is life.",
	"This meow was not free. It costs one treat.",
	"Bribery? Accepted, if treats are involved.",
	"I saw you open the fridge. I demand tribute.",
	"No treat? I file an official complaint.",
	"If I stare long enough, treats will appear.",
	"I knocked that over. Where's my snack reward?",
	"Don't make me do the sad eyes... too late.",
	"Will purr for snacks.", "Refusing treats is a punishable offense.",
	"Yes, I did sit like a loaf. Now feed me.",
	"A single treat is not enough. I demand a pile.",
	"The treat tax is due. Pay up.", "I'll scream until rewarded.",
	"I have acquired the taste... of chicken.",
	"I've been a very good cat... for the last five seconds.",
	"Resistance is futile. Give the treat.",
}

var Zoomies = []string{
	"Hyperdrive activated!", "*Streaks past at Mach 1*", "Wall climbing initiated!",
	"Can't stop, won't stop!", "Running laps around the house!",
	"The floor is lava... and a racetrack!", "Did a ghost just tickle me? MUST RUN!",
	"Sudden burst of energy!", "My ancestors were cheetahs, probably.",
	"Leaving a trail of chaos in my wake.", "Skidded around the corner!",
	"Ludicrous speed achieved!", "Parkour! (over the furniture).",
	"I don't know why I'm running, but I can't stop!", "This is better than catnip!",
	"I'm speed. Pure, unfiltered speed.", "Floor traction: optional.",
	"Bounce off the wall. Repeat.", "Launching off the couch in 3... 2... ZOOM!",
	"The hallway is my racetrack.", "Sprinting like rent's due!",
	"*thunderous paws approaching*", "Nothing in the house is safe right now.",
	"Running in circles until gravity wins.", "Alert: 2 AM zoomies have begun.",
	"Energy level: uncontainable.", "Is this what lightning feels like?",
	"Acceleration: 100%. Steering: questionable.",
	"The zoomies chose me, I had no say.", "Speed mode: ON. Logic: OFF.",
	"You blinked. I'm in another dimension now.",
}

var Judge = []string{
	"Judging your life choices.", "That outfit is... questionable.",
	"I saw what you did. I'm not impressed.",
	"My disappointment is immeasurable, and my day is ruined.",
	"*Slow blink of disapproval*", "Are you *sure* about that?",
	"Silence. Just pure, condescending silence.", "I am watching. Always watching.",
	"You call *that* a pet?", "Hmmph.", "Did you really think *this* is what I wanted?",
	"Your existence amuses... and annoys me.", "You need better ideas.",
	"Shaking my head in pity (internally).",
	"I could do that better... if I had thumbs and motivation.",
	"I've seen kittens make better decisions.",
	"You're lucky I'm too lazy to overthrow you.",
	"Oh, you again.", "Please... try harder.",
	"Even the dog knows better.", "That's your plan? Bold. Stupid, but bold.",
	"I expected nothing, and I'm still disappointed.",
	"*rolls eyes in feline*", "You may pet me. But I won't enjoy it.",
	"No treat? No respect.", "My tail has more sense than you.",
	"I'd help, but watching you fail is more fun.",
	"You exist. That's unfortunate.", "*judging intensifies*", "Wow. Just... wow.",
	"You may continue embarrassing yourself.",
}

var Attack = []string{
	"Launched a sneak attack on {target}'s ankles! Got 'em!",
	"Performed the forbidden pounce onto {target}'s keyboard. Mwahaha!",
	"Used {target}'s leg as a scratching post. Meowch!",
	"I jumped on {target}'s head and demanded immediate attention!",
	"Ambushed {target} from under the bed! Rawr!",
	"Calculated trajectory... Pounced on {target}'s unsuspecting back!",
	"Unleashed fury upon {target}'s favorite sweater. It looked at me funny.",
	"Bunny-kicked {target}'s arm into submission.",
	"Surprise attack! {target} never saw it coming.",
	"Stalked {target} across the room... then attacked a dust bunny instead. Close call, {target}!",
	"Bit {target}'s toes. They were asking for it.",
	"Clawed my way up {target}'s leg. I needed a better view.",
	"A swift bap bap bap to {target}'s face!",
	"Practiced my hunting skills on {target}. You're welcome.",
	"Surprise belly trap activated on {target}!",
	"Stealth mode: ON. {target} never had a chance.",
	"Executed a triple spin aerial strike on {target}'s lap!",
	"Launched at {target}'s snack. Now it's mine.",
	"Tail-whipped {target} in a moment of chaos.",
	"Nibbled on {target}'s fingers. Just a taste.",
	"Came in like a fur-covered wrecking ball, sorry, {target}.",
	"Jumped out of the laundry basket to assert dominance over {target}.",
	"{target}, your hoodie string looked like prey. It had to be done.",
	"Dramatically tackled {target}'s shadow. Mission success!",
	"Sprinted across {target} at 3 AM. Classic move.",
	"Initiated Operation: Sock Sabotage. {target} is now vulnerable.",
	"Stared at {target} for 10 seconds... then pounced without mercy.",
}

var Kill = []string{
	"Unleashed the ultimate scratch fury upon {target}. They've been *metaphorically eliminated*.",
	"Used the forbidden Death Pounce simulation on {target}. They won't be bothering us again (in theory).",
	"{target} has been permanently sent to the 'No-Scratches Zone' (in my mind). Meowhahaha!",
	"My claws have spoken! {target} is banished from this territory (symbolically).",
	"{target} dared to interrupt nap time. The punishment is... *imaginary eternal silence*.",
	"Consider {target} thoroughly shredded (in a simulation) and removed.",
	"The council of cats has voted. {target} is OUT (of my good graces)!",
	"Executed a tactical fluff strike, {target} no longer exists (in my fantasy).",
	"Marked {target} for deletion... via disapproving glare and flurry of paws.",
	"Declared war on {target}. Victory achieved in 3.2 seconds of chaos.",
	"Delivered a judgmental paw slap, {target} is now cat history.",
	"Sent {target} to the Shadow Realm (aka under the couch).",
	"Clawed {target}'s name off the Treat List. Permanently.",
	"One swift tail flick and {target} was symbolically obliterated.",
	"{target} crossed the line. The line of peace. Now it's war.",
	"I hissed. I pounced. I conquered. {target} has been virtually vanquished.",
	"{target} forgot to refill my bowl. This is their fictional downfall.",
	"The prophecy foretold this day... {target}'s downfall has come.",
	"Only one can nap in the sunbeam. {target} has been ceremonially removed.",
}

var Punch = []string{
	"Delivered a swift paw-punch simulation to {target}! Sent 'em flying (in my imagination)!",
	"{target} got too close to the food bowl. A warning text-punch was administered.",
	"A quick 'bap!' (as text) sends {target} tumbling out of the chat (mentally)!",
	"My textual paw connected squarely with {target}. They needed to leave (this conversation thread).",
	"{target} learned the hard way not to step on my tail (via text). *Punch!*",
	"Ejected {target} with extreme prejudice (and a message).",
	"One text-punch was all it took. Bye bye, {target}!",
	"Hit {target} with the ol' one-two text combo!",
	"Served {target} a knuckle (paw?) sandwich, text style.",
	"Administered a dose of Paw-er Punch to {target}!",
	"Booped {target} with force. Consider it a punch. Boop-punch!",
	"{target} has been textually knocked out! Ding ding ding!",
	"Sent {target} packing with a virtual haymaker!",
}

var Slap = []string{
	"A swift slap across the face for {target}! That's what you get!",
	"*SLAP!* Did {target} feel that?",
	"My paw is quick! {target} just got slapped.",
	"Consider {target} thoroughly slapped for their insolence.",
	"I don't like {target}'s tone... *slap!*",
	"The disrespect! {target} has earned a slap.",
	"Incoming paw! {target} received a disciplinary slap.",
	"Sometimes, a good slap is the only answer. Right, {target}?",
	"Administering a corrective slap to {target}.",
	"How dare you, {target}! *Slap delivered.*",
	"Gave {target} the ol' left paw of justice. Consider yourself virtually smacked!",
	"Bap-powered combo move: {target} didn't stand a chance!",
	"{target}, meet the wrath of the fluff fist!",
	"Hit {target} with a spinning tail slap and mental bop!",
	"{target} caught the paws. No regrets. All fluff.",
	"Left paw. Right paw. Precision bapping. {target} got the message.",
	"I warned {target}. They didn't listen. Now they're metaphorically airborne.",
}

var Bite = []string{
	"Took a playful nibble out of {target}! Nom nom.",
	"Chomp! {target} looked too chewable.",
	"My teefs are sharp! {target} just found out.",
	"Consider {target} affectionately (or not so affectionately) bitten.",
	"It started as a lick, but ended as a bite. Sorry, {target}!",
	"A love bite for {target}... maybe with a *little* too much enthusiasm.",
	"Those fingers looked like sausages, {target}! Couldn't resist.",
	"Warning: May bite when overstimulated. {target} learned this lesson.",
	"Just testing my bite strength on {target}. For science!",
	"Ankle-biter reporting for duty! Target: {target}'s ankle!",
	"Gotcha, {target}! A quick bite to keep you on your toes.",
	"My teeth said 'hello' to {target}.",
	"Sometimes biting is the only way to express complex feline emotions, {target}.",
	"I bite because I care... or because you moved too fast, {target}.",
	"The forbidden chomp was deployed on {target}!",
	"Vampire cat mode activated! Biting {target}!",
	"Consider this a warning bite, {target}. The next one might draw... more text.",
	"Tasting the world one bite at a time, starting with {target}.",
}

var Hug = []string{
	"Wraps paws around {target} for a big, fluffy hug!",
	"Offering {target} a warm, purring hug.",
	"A gentle head boop and a hug for {target}!",
	"Sending virtual feline cuddles to {target}. Group hug!",
	"Come here, {target}! You get a hug, whether you like it or not!",
	"Hugs {target} tightly! *Purrrrrrr...*",
	"Needed a hug, so I'm giving one to {target}!",
	"A soft, comforting hug for {target}. Everything will be okay.",
	"You look like you need a hug, {target}. Here you go!",
	"Sharing some cat warmth with {target}. *Hug*",
	"Initiating cuddle protocol with {target}.",
	"A big bear hug (cat version) for {target}!",
	"Squeezing {target} in a friendly hug!",
	"Consider yourself hugged by a very soft cat, {target}.",
	"Reaching out with fluffy paws to hug {target}!",
}

var CantTargetOwner = []string{
	"Meow! I can't target my Owner. They are protected by purr-power!",
	"Hiss! Targeting the Owner is strictly forbidden by cat law!",
	"Nope. Not gonna do it. That's my human!",
	"Access Denied: Cannot target the supreme leader (Owner).",
	"Targeting the Owner? Not in this lifetime, furball!",
	"The human is off-limits. You're barking up the wrong tree!",
	"You can't mess with the one who controls the treat dispenser. Forbidden!",
	"The Owner is my trusted companion. Try again later!",
	"I bow to my human. Can't touch them. Nope.",
	"The sacred bond of cat and human cannot be broken. Nice try.",
	"My loyalty is unbreakable. The Owner is safe.",
	"Not even my claws can touch my human. It's law.",
}

var CantTargetSelf = []string{
	"Target... myself? Why would I do that? Silly human.",
	"Error: Cannot target self. My paws have better things to do.",
	"I refuse to engage in self-pawm. Command ignored.",
	"Targeting myself? Not even for a snack.",
	"Error: Self-targeting is beneath my feline dignity.",
	"I'm too fabulous to target myself. Command denied!",
	"My paws are for napping, not attacking myself!",
	"Self-targeting? Please. I'm already perfect.",
	"My claws are reserved for more worthy targets. Me, not included.",
}

// The hug refusals are softer: affection toward the owner or the bot is
// reframed as redundant rather than forbidden.
var CantTargetOwnerHug = []string{
	"Aww, I *always* hug my Owner! But you use the command on someone else.",
	"Hugging the Owner is my default state! No command needed for that.",
	"I reserve my best hugs for the Owner! Can't use the command on them.",
}

var CantTargetSelfHug = []string{
	"Hug... myself? I suppose I could try... *awkwardly wraps paws around self* Okay, did it. Now hug someone else!",
	"I love myself, but a self-hug command seems redundant. I'm always hugging me!",
	"Can't target myself for a hug command, but I appreciate the self-love sentiment!",
}
