package rules

import (
	"regexp"
	"strings"
)

// Voice is a player's stylistic rendering mode.
type Voice string

const (
	VoiceFormal     Voice = "formal"
	VoiceCasual     Voice = "casual"
	VoicePassionate Voice = "passionate"
	VoiceNeutral    Voice = "neutral"
)

// playerVoiceCycle fixes the voice of each seat. Player i speaks with
// playerVoiceCycle[i mod 5].
var playerVoiceCycle = [5]Voice{VoiceFormal, VoiceCasual, VoicePassionate, VoiceNeutral, VoiceFormal}

// VoiceFor returns the voice for a zero-based player index.
func VoiceFor(playerIndex int) Voice {
	return playerVoiceCycle[playerIndex%len(playerVoiceCycle)]
}

// Prefixes per voice. Formal prefixes expect a subjunctive clause, casual
// and passionate ones an infinitive clause; transformForVoice produces the
// matching form.
var voicePrefixes = map[Voice][]string{
	VoiceFormal: {
		"It is essential that ",
		"I insist that ",
		"I require that ",
		"It is important that ",
	},
	VoiceCasual: {
		"I'd really like ",
		"I'd love for ",
		"I want ",
		"I'd prefer for ",
	},
	VoicePassionate: {
		"I absolutely need ",
		"I really, really need ",
		"I desperately want ",
		"It's vital to me for ",
	},
}

var (
	reMustNot = regexp.MustCompile(`\bmust not\b`)
	reMust    = regexp.MustCompile(`\bmust\b`)
	reMayNot  = regexp.MustCompile(`\bmay not\b`)
	reMay     = regexp.MustCompile(`\bmay\b`)
	reSpaces  = regexp.MustCompile(`  +`)
)

// transformForVoice rewrites a neutral sentence into the clause a voice
// prefix expects: the trailing period is stripped, the first letter is
// lowered, and the modals are rewritten. Formal drops them for the
// subjunctive ("the room must be" to "the room be"); the other voices
// substitute the infinitive ("the room to be").
func transformForVoice(text string, v Voice) string {
	core := strings.TrimSuffix(text, ".")
	core = strings.ToLower(core[:1]) + core[1:]

	if v == VoiceFormal {
		core = reMustNot.ReplaceAllString(core, "not")
		core = reMust.ReplaceAllString(core, "")
		core = reMayNot.ReplaceAllString(core, "not")
		core = reMay.ReplaceAllString(core, "")
		core = reSpaces.ReplaceAllString(core, " ")
	} else {
		core = reMustNot.ReplaceAllString(core, "not to")
		core = reMust.ReplaceAllString(core, "to")
		core = reMayNot.ReplaceAllString(core, "not to")
		core = reMay.ReplaceAllString(core, "to")
	}
	return core
}
