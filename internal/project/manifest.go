package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNoManifest is returned by LoadManifest when no scooter.toml is found.
var ErrNoManifest = errors.New("no " + ManifestName + " found")

// Emit formats accepted in [build].emit.
const (
	EmitIR      = "ir"
	EmitMsgpack = "msgpack"
)

type Manifest struct {
	Path   string // absolute path to scooter.toml
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// BuildConfig: main и out задаются относительно корня проекта.
type BuildConfig struct {
	Main string `toml:"main"`
	Out  string `toml:"out"`
	Emit string `toml:"emit"`
}

// LoadManifest finds scooter.toml at or above startDir and parses it.
func LoadManifest(startDir string) (*Manifest, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoManifest
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// LoadConfig parses and validates a manifest file. [package].name and
// [build].main are required; emit defaults to "ir" and out to "build".
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("build", "main") || strings.TrimSpace(cfg.Build.Main) == "" {
		return Config{}, fmt.Errorf("%s: missing [build].main", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	switch cfg.Build.Emit {
	case "":
		cfg.Build.Emit = EmitIR
	case EmitIR, EmitMsgpack:
	default:
		return Config{}, fmt.Errorf("%s: [build].emit must be %q or %q, got %q", path, EmitIR, EmitMsgpack, cfg.Build.Emit)
	}
	if cfg.Build.Out == "" {
		cfg.Build.Out = "build"
	}
	return cfg, nil
}

// MainPath resolves [build].main. It may name a .sc file or a directory.
func (m *Manifest) MainPath() (string, error) {
	main := filepath.Join(m.Root, filepath.FromSlash(strings.TrimSpace(m.Config.Build.Main)))
	if !pathWithin(m.Root, main) {
		return "", fmt.Errorf("%s: [build].main escapes project root", m.Path)
	}
	info, err := os.Stat(main)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: [build].main path does not exist: %s", m.Path, main)
		}
		return "", fmt.Errorf("%s: failed to stat [build].main: %w", m.Path, err)
	}
	if !info.IsDir() && filepath.Ext(main) != SourceExt {
		return "", fmt.Errorf("%s: [build].main must be a %s file or directory", m.Path, SourceExt)
	}
	return main, nil
}

// OutDir is the absolute output directory.
func (m *Manifest) OutDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Out))
}

// SourceExt is the extension of source files.
const SourceExt = ".sc"

func pathWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
