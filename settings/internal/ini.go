package internal

import (
	"fmt"
	"sort"

	"github.com/go-ini/ini"
)

type IniFile struct {
	path string
}

func NewIniFile(path string) (SettingsFile, error) {
	return &IniFile{path}, nil
}

func (s *IniFile) Read() (Sections, error) {
	iniFile, err := ini.LoadSources(ini.LoadOptions{
		SpaceBeforeInlineComment: true,
		UnescapeValueDoubleQuotes: true,
	}, s.path)
	if err != nil {
		return nil, fmt.Errorf("read settings ini file failed, err = %v", err)
	}

	config := Sections{}
	for _, section := range iniFile.Sections() {
		keys := section.Keys()
		if section.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}

		sec := config.section(section.Name())
		for _, entry := range keys {
			sec[entry.Name()] = entry.String()
		}
	}

	return config, nil
}

func (s *IniFile) Write(sections Sections) error {
	iniFile := ini.Empty()

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		section := iniFile.Section(name)
		values := sections[name]

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if _, err := section.NewKey(k, values[k]); err != nil {
				return fmt.Errorf("write settings key %s.%s failed, err = %v", name, k, err)
			}
		}
	}

	if err := iniFile.SaveTo(s.path); err != nil {
		return fmt.Errorf("write settings ini file failed, err = %v", err)
	}
	return nil
}
