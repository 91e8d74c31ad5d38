package internal

// Sections is the raw section -> key -> value form every format decodes to.
type Sections map[string]map[string]string

type SettingsFile interface {
	Read() (Sections, error)
	Write(Sections) error
}

func (s Sections) section(name string) map[string]string {
	sec, ok := s[name]
	if !ok {
		sec = map[string]string{}
		s[name] = sec
	}
	return sec
}
