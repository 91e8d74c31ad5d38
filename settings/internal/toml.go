package internal

import (
	"fmt"
	"io/ioutil"

	"github.com/pelletier/go-toml"
)

type TomlFile struct {
	path string
}

func NewTomlFile(path string) (SettingsFile, error) {
	return &TomlFile{path}, nil
}

func (s *TomlFile) Read() (Sections, error) {
	tomlFile, err := toml.LoadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read settings toml file failed, err = %v", err)
	}

	return Split(tomlFile.ToMap()), nil
}

func (s *TomlFile) Write(sections Sections) error {
	tree, err := toml.TreeFromMap(Nest(sections))
	if err != nil {
		return fmt.Errorf("encode settings toml failed, err = %v", err)
	}

	out, err := tree.ToTomlString()
	if err != nil {
		return fmt.Errorf("encode settings toml failed, err = %v", err)
	}

	if err := ioutil.WriteFile(s.path, []byte(out), 0644); err != nil {
		return fmt.Errorf("write settings toml file failed, err = %v", err)
	}
	return nil
}
