package internal

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
)

type JsonFile struct {
	path string
}

func NewJsonFile(path string) (SettingsFile, error) {
	return &JsonFile{path}, nil
}

func (s *JsonFile) Read() (Sections, error) {
	source, err := ioutil.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read settings json file failed, err = %v", err)
	}

	content := map[string]interface{}{}
	err = json.Unmarshal(source, &content)
	if err != nil {
		return nil, fmt.Errorf("read settings json file failed, err = %v", err)
	}

	return Split(content), nil
}

func (s *JsonFile) Write(sections Sections) error {
	out, err := json.MarshalIndent(Nest(sections), "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings json failed, err = %v", err)
	}

	if err := ioutil.WriteFile(s.path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("write settings json file failed, err = %v", err)
	}
	return nil
}
