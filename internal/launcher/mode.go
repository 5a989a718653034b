package launcher

import "strings"

// Mode selects which entry script the launcher hands off to.
type Mode int

const (
	ModeNormal    Mode = iota // plain chat app
	ModeHotReload             // restarts itself on source edits
)

func (m Mode) String() string {
	if m == ModeHotReload {
		return "hot-reload"
	}
	return "normal"
}

// ParseMode maps a menu input line to a Mode. Anything other than the two
// menu numbers (including empty input) resolves to ModeNormal with
// ok=false so the caller can print the fallback notice.
func ParseMode(s string) (Mode, bool) {
	switch strings.TrimSpace(s) {
	case "1":
		return ModeNormal, true
	case "2":
		return ModeHotReload, true
	}
	return ModeNormal, false
}
