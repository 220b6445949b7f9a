package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawGhost: true,
		Colors: ConfigColors{
			Pieces: PieceColors{
				I: 51,  // cyan
				O: 226, // yellow
				T: 129, // purple
				S: 46,  // green
				Z: 196, // red
				J: 27,  // blue
				L: 208, // orange
			},
			GhostColor:   240,
			GridColor:    236,
			TextColor:    255,
			GameOverText: 196,
		},
		Symbols: ConfigSymbols{
			Block: '█',
			Ghost: '░',
			Empty: ' ',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			BoardWidth:  10,
			BoardHeight: 20,
		},
	}
}
