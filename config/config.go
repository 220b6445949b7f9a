package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termtris/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// PieceColors holds one 256-color palette index per tetromino kind.
type PieceColors struct {
	I int `json:"i"`
	O int `json:"o"`
	T int `json:"t"`
	S int `json:"s"`
	Z int `json:"z"`
	J int `json:"j"`
	L int `json:"l"`
}

type ConfigColors struct {
	Pieces       PieceColors `json:"pieces"`
	GhostColor   int         `json:"ghost"`
	GridColor    int         `json:"grid"`
	TextColor    int         `json:"text"`
	GameOverText int         `json:"game_over_text"`
}

type ConfigSymbols struct {
	Block rune `json:"block"`
	Ghost rune `json:"ghost"`
	Empty rune `json:"empty"`
}

type Theme struct {
	DrawGhost bool          `json:"draw_ghost"`
	Colors    ConfigColors  `json:"colors"`
	Symbols   ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the playing field settings.
type GameDefaults struct {
	BoardWidth  int `json:"board_width"`
	BoardHeight int `json:"board_height"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Block, c.Theme.Symbols.Ghost, c.Theme.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.BoardWidth < 4 || c.Game.BoardHeight < 4 {
		return &InvalidConfig{"board must be at least 4x4"}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
