package settings

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/zhangel/go-configure/settings/internal"
)

// DefaultSection holds keys that appear outside any section.
const DefaultSection = "DEFAULT"

var fileFactory = map[string]func(path string) (internal.SettingsFile, error){
	"ini":  internal.NewIniFile,
	"cfg":  internal.NewIniFile,
	"yaml": internal.NewYamlFile,
	"yml":  internal.NewYamlFile,
	"json": internal.NewJsonFile,
	"toml": internal.NewTomlFile,
}

// Snapshot maps a section name to the key/value pairs of that section.
type Snapshot map[string]map[string]string

func New() Snapshot {
	return Snapshot{}
}

// Section returns the named section, creating it when absent.
func (s Snapshot) Section(name string) map[string]string {
	sec, ok := s[name]
	if !ok || sec == nil {
		sec = map[string]string{}
		s[name] = sec
	}
	return sec
}

func (s Snapshot) Get(section, key string) (string, bool) {
	sec, ok := s[section]
	if !ok {
		return "", false
	}
	v, ok := sec[key]
	return v, ok
}

func (s Snapshot) Set(section, key, value string) {
	s.Section(section)[key] = value
}

func (s Snapshot) Sections() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge copies every key of other into s, section by section. Keys of s that
// other does not carry are left untouched.
func (s Snapshot) Merge(other Snapshot) Snapshot {
	for name, values := range other {
		sec := s.Section(name)
		for k, v := range values {
			sec[k] = v
		}
	}
	return s
}

func (s Snapshot) Clone() Snapshot {
	return New().Merge(s)
}

// Read loads every section of the settings file at path. The format follows
// the file extension; unknown extensions are read as ini.
func Read(path string) (Snapshot, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}

	sections, err := file.Read()
	if err != nil {
		return nil, err
	}

	return Snapshot(sections).Clone(), nil
}

// ReadIfExists behaves like Read but returns an empty snapshot when no file
// exists at path.
func ReadIfExists(path string) (Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.Wrapf(err, "stat settings file %q failed", path)
	}
	return Read(path)
}

func Write(path string, snapshot Snapshot) error {
	file, err := openFile(path)
	if err != nil {
		return err
	}
	return file.Write(internal.Sections(snapshot))
}

// IsRegularFile reports whether path names an existing file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func openFile(path string) (internal.SettingsFile, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	factory, ok := fileFactory[ext]
	if !ok {
		factory = internal.NewIniFile
	}
	return factory(path)
}
