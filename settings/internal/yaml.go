package internal

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

type YamlFile struct {
	path string
}

func NewYamlFile(path string) (SettingsFile, error) {
	return &YamlFile{path}, nil
}

func (s *YamlFile) Read() (Sections, error) {
	source, err := ioutil.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read settings yaml file failed, err = %v", err)
	}

	content := map[string]interface{}{}
	err = yaml.Unmarshal(source, &content)
	if err != nil {
		return nil, fmt.Errorf("read settings yaml file failed, err = %v", err)
	}

	return Split(content), nil
}

func (s *YamlFile) Write(sections Sections) error {
	out, err := yaml.Marshal(Nest(sections))
	if err != nil {
		return fmt.Errorf("encode settings yaml failed, err = %v", err)
	}

	if err := ioutil.WriteFile(s.path, out, 0644); err != nil {
		return fmt.Errorf("write settings yaml file failed, err = %v", err)
	}
	return nil
}
