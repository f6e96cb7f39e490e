package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/texbuild/internal/dirs"
)

// Standard profile names.
const (
	DevProfile     = "dev"
	ReleaseProfile = "release"
)

// Executables maps each (engine, format) program to the name or path of
// the binary to invoke. Defaults are the conventional TeX Live names.
type Executables struct {
	Tex      string `toml:"tex"`
	Latex    string `toml:"latex"`
	Pdftex   string `toml:"pdftex"`
	Pdflatex string `toml:"pdflatex"`
	Xetex    string `toml:"xetex"`
	Xelatex  string `toml:"xelatex"`
	Luatex   string `toml:"luatex"`
	Lualatex string `toml:"lualatex"`
	Biber    string `toml:"biber"`
}

// GlobalConfig is the process-wide tool configuration, loaded once per
// invocation and immutable afterward.
type GlobalConfig struct {
	Executables      Executables `toml:"executables"`
	DefaultProfile   string      `toml:"default-profile"`
	DefaultTexFormat TexFormat   `toml:"default-tex-format"`
	DefaultTexEngine TexEngine   `toml:"default-tex-engine"`
	Bibliography     string      `toml:"default-bibliography"`
}

// DefaultGlobal returns the configuration used when no global config file
// exists.
func DefaultGlobal() GlobalConfig {
	return GlobalConfig{
		Executables: Executables{
			Tex:      "tex",
			Latex:    "latex",
			Pdftex:   "pdftex",
			Pdflatex: "pdflatex",
			Xetex:    "xetex",
			Xelatex:  "xelatex",
			Luatex:   "luatex",
			Lualatex: "lualatex",
			Biber:    "biber",
		},
		DefaultProfile:   DevProfile,
		DefaultTexFormat: FormatLatex,
		DefaultTexEngine: EnginePdftex,
	}
}

// LoadGlobal reads the global config file, overlaying it on the defaults.
// A missing file yields the defaults. An optional .env file is loaded
// first so config values like executable paths can reference it.
func LoadGlobal(path dirs.Path[dirs.GlobalConfig]) (GlobalConfig, error) {
	_ = godotenv.Load() // best effort, absent .env is fine

	cfg := DefaultGlobal()
	if _, err := os.Stat(path.String()); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path.String(), &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("load global config %s: %w", path, err)
	}
	if cfg.DefaultProfile == "" {
		cfg.DefaultProfile = DevProfile
	}
	return cfg, nil
}

// ChooseProgram maps an (engine, format) pair to the configured
// executable.
func (c *GlobalConfig) ChooseProgram(engine TexEngine, format TexFormat) (string, error) {
	e := &c.Executables
	switch {
	case engine == EngineTex && format == FormatTex:
		return e.Tex, nil
	case engine == EngineTex && format == FormatLatex:
		return e.Latex, nil
	case engine == EnginePdftex && format == FormatTex:
		return e.Pdftex, nil
	case engine == EnginePdftex && format == FormatLatex:
		return e.Pdflatex, nil
	case engine == EngineXetex && format == FormatTex:
		return e.Xetex, nil
	case engine == EngineXetex && format == FormatLatex:
		return e.Xelatex, nil
	case engine == EngineLuatex && format == FormatTex:
		return e.Luatex, nil
	case engine == EngineLuatex && format == FormatLatex:
		return e.Lualatex, nil
	default:
		return "", fmt.Errorf("no executable configured for engine %q with format %q", engine, format)
	}
}
