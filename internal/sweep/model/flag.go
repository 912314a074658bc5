package model

// Flag is a recorded yes/no decision that may be absent.
type Flag uint8

const (
	FlagUnknown Flag = iota
	FlagYes
	FlagNo
)

// FlagOf converts a recorded boolean.
func FlagOf(b bool) Flag {
	if b {
		return FlagYes
	}
	return FlagNo
}

func (f Flag) String() string {
	switch f {
	case FlagYes:
		return "yes"
	case FlagNo:
		return "no"
	default:
		return "unknown"
	}
}
