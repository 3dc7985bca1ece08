// Package words loads the bonus word list and drives the bonus panel that
// shows a random word whenever a row is cleared.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/words.txt
var embeddedWords []byte

// ErrMissingWords is returned when a word list cannot be read or holds no words.
var ErrMissingWords = errors.New("words: word list missing")

// Provider supplies a word list.
type Provider interface {
	Name() string
	Words() ([]string, error)
}

// FileProvider reads a list from disk. The format follows the extension.
type FileProvider struct {
	Path string
}

// Name implements Provider.
func (p FileProvider) Name() string { return p.Path }

// Words implements Provider.
func (p FileProvider) Words() ([]string, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingWords, p.Path, err)
	}
	list, err := Parse(p.Path, data)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrMissingWords, p.Path)
	}
	return list, nil
}

// EmbeddedProvider serves the built-in list.
type EmbeddedProvider struct{}

// Name implements Provider.
func (EmbeddedProvider) Name() string { return "embedded" }

// Words implements Provider.
func (EmbeddedProvider) Words() ([]string, error) {
	return Parse("words.txt", embeddedWords)
}

// Load returns the bonus word list.
// Search order: customPath -> ~/.tetris/words.txt -> ./words.txt -> embedded default
//
// Only an explicit customPath reports failures; the implicit locations are
// skipped when absent or empty.
func Load(customPath string) ([]string, error) {
	if customPath != "" {
		return FileProvider{Path: customPath}.Words()
	}

	for _, p := range searchPath() {
		if list, err := p.Words(); err == nil {
			return list, nil
		}
	}
	return EmbeddedProvider{}.Words()
}

// Source reports which provider Load would use for customPath.
func Source(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, p := range searchPath() {
		if _, err := p.Words(); err == nil {
			return p.Name()
		}
	}
	return EmbeddedProvider{}.Name()
}

func searchPath() []Provider {
	var out []Provider
	if userPath := userWordsPath(); userPath != "" {
		out = append(out, FileProvider{Path: userPath})
	}
	return append(out, FileProvider{Path: "words.txt"})
}

// userWordsPath returns ~/.tetris/words.txt, or empty if home is unavailable.
func userWordsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "words.txt")
}

// yamlList is the layout of .yaml word lists.
type yamlList struct {
	Words []string `yaml:"words"`
}

// Parse decodes a word list. name only selects the format.
func Parse(name string, data []byte) ([]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var doc yamlList
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("words: parse %s: %w", name, err)
		}
		out := make([]string, 0, len(doc.Words))
		for _, w := range doc.Words {
			if w = strings.TrimSpace(w); w != "" {
				out = append(out, w)
			}
		}
		return out, nil
	default:
		return parseLines(string(data)), nil
	}
}

func parseLines(s string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out
}
