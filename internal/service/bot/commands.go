package bot

import "strings"

type commandKind int

const (
	cmdAnswer commandKind = iota
	cmdHelp
	cmdStats
	cmdStart
	cmdHint
	cmdList
	cmdDelete
	cmdAdd
)

type command struct {
	kind commandKind
	// arg is the text after the prefix for add and delete; the whole
	// trimmed message for answers.
	arg string
}

var keywords = map[string]commandKind{
	"menu":  cmdHelp,
	"help":  cmdHelp,
	"คำสั่ง": cmdHelp,
	"เมนู":  cmdHelp,

	"score": cmdStats,
	"stats": cmdStats,
	"คะแนน": cmdStats,
	"สถิติ": cmdStats,

	"start":   cmdStart,
	"play":    cmdStart,
	"quiz":    cmdStart,
	"เริ่มเกม": cmdStart,
	"เริ่ม":   cmdStart,

	"hint":  cmdHint,
	"คำใบ้": cmdHint,

	"vocab":     cmdList,
	"list":      cmdList,
	"คลัง":      cmdList,
	"คลังคำศัพท์": cmdList,
}

// Longer prefixes come first so "ลบคำศัพท์:" is not read as "ลบ" + junk.
var prefixes = []struct {
	prefix string
	kind   commandKind
}{
	{"ลบคำศัพท์:", cmdDelete},
	{"delete:", cmdDelete},
	{"del:", cmdDelete},
	{"ลบ:", cmdDelete},
	{"เพิ่ม:", cmdAdd},
	{"add:", cmdAdd},
}

// parseCommand classifies a message. Matching ignores case and surrounding
// whitespace; anything unrecognised is an answer.
func parseCommand(text string) command {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	if kind, ok := keywords[lower]; ok {
		return command{kind: kind}
	}

	for _, p := range prefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return command{kind: p.kind, arg: strings.TrimSpace(text[len(p.prefix):])}
		}
	}

	return command{kind: cmdAnswer, arg: text}
}
