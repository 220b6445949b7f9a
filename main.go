// termtris is a terminal tetris with player profiles and a local
// high-score table.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris/config"
	"termtris/profile"
	"termtris/tetris"
	"termtris/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagProfile = flag.String("profile", "", "Profile to play as (created if missing)")
	flagScores  = flag.Bool("scores", false, "Print the high-score table and exit")
	flagSeed    = flag.Int64("seed", 0, "Bag RNG seed (0 = random)")
	flagWidth   = flag.Int("width", 0, "Board width")
	flagHeight  = flag.Int("height", 0, "Board height")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.TetrisBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var scoreBoard *ui.ScoreBoard
var profileMenu *ui.ProfileMenu
var cfg *config.Config
var store *profile.Store

var game *tetris.Game
var gravityStop chan struct{}

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termtris %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	store, err = profile.DefaultStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Handle --scores: print and exit without starting the UI
	if *flagScores {
		printScores()
		return
	}

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ▣ termtris ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewTetrisBoard(cfg)
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if game == nil || game.Over() {
			return event
		}
		switch event.Key() {
		case tcell.KeyLeft:
			game.MoveLeft()
		case tcell.KeyRight:
			game.MoveRight()
		case tcell.KeyDown:
			game.SoftDrop()
		case tcell.KeyUp:
			game.Rotate()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				game.MoveLeft()
			case 'l':
				game.MoveRight()
			case 'j':
				game.SoftDrop()
			case 'k', 'x':
				game.Rotate()
			case 'z':
				game.RotateCCW()
			case ' ':
				game.HardDrop()
			case 'q':
				game.Quit()
			}
		}
		refreshGame()
		return nil
	})

	// Profile selection screen
	profileMenu = ui.NewProfileMenu(store,
		func(name string) {
			startGame(name)
		},
		func() {
			scoreBoard.Refresh()
			rootPage.SwitchToPage("scores")
		},
		func() {
			app.Stop()
		},
	)

	// High-score screen
	scoreBoard = ui.NewScoreBoard(store)
	scoreBoard.Box().SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("menu")
			return nil
		}
		return event
	})

	quickStart := *flagProfile != ""

	rootPage.AddPage("menu", profileMenu.Form(), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("scores", ui.CreateCenteredForm(wrapFlex(scoreBoard.Box()), 50), true, false)

	if quickStart {
		name := *flagProfile
		if _, ok := store.Get(name); !ok {
			if _, err := store.Create(name); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		store.SetActive(name)
		startGame(name)
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// startGame creates a fresh session for the given profile and switches
// to the game view.
func startGame(profileName string) {
	stopGravity()

	gameCfg := tetris.GameConfig{
		Width:   cfg.Game.BoardWidth,
		Height:  cfg.Game.BoardHeight,
		Profile: profileName,
		Seed:    *flagSeed,
	}
	if *flagWidth > 0 {
		gameCfg.Width = *flagWidth
	}
	if *flagHeight > 0 {
		gameCfg.Height = *flagHeight
	}

	game = tetris.NewGame(gameCfg)
	gameHint.SetText(fmt.Sprintf("Playing as %s", profileName))
	refreshGame()
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameBoard.Box)

	gravityStop = make(chan struct{})
	go gravityLoop(game, gravityStop)
}

// gravityLoop drives the periodic gravity tick. All engine mutation
// happens inside QueueUpdateDraw so the session stays single-owner.
// The engine is only touched inside the queued callback; the loop
// itself sees level and game-over state through values handed back
// over the done channel.
func gravityLoop(g *tetris.Game, stop chan struct{}) {
	level := 1
	for {
		select {
		case <-stop:
			return
		case <-time.After(tetris.GravityInterval(level)):
		}
		done := make(chan struct{})
		over := false
		app.QueueUpdateDraw(func() {
			defer close(done)
			if g != game || g.Over() {
				over = true
				return
			}
			g.Tick()
			snap := g.Snapshot()
			level = snap.Level
			over = snap.Over
			refreshGame()
		})
		<-done
		if over {
			return
		}
	}
}

// refreshGame pushes the latest snapshot to the widgets and handles
// the end of the session.
func refreshGame() {
	if game == nil {
		return
	}
	snap := game.Snapshot()
	gameBoard.SetSnapshot(snap)
	gameBoard.SetLastGain(game.LastClear())
	if snap.Over {
		finishGame()
	}
}

// finishGame records the result and shows the game-over modal.
func finishGame() {
	stopGravity()

	res := game.Result()
	recorded := ""
	if res.Profile != "" {
		if err := store.RecordGame(res); err != nil {
			recorded = fmt.Sprintf("\n(score not saved: %s)", err)
		}
	}

	modal := tview.NewModal().
		SetText(fmt.Sprintf("Game over!\n\nScore: %d\nLines: %d\nLevel: %d%s", res.Score, res.Lines, res.Level, recorded)).
		AddButtons([]string{"Play Again", "Menu"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("gameover")
			if buttonLabel == "Play Again" {
				startGame(res.Profile)
				return
			}
			profileMenu.Refresh()
			rootPage.SwitchToPage("menu")
		})
	rootPage.AddPage("gameover", modal, true, true)
}

func stopGravity() {
	if gravityStop != nil {
		close(gravityStop)
		gravityStop = nil
	}
}

// printScores writes the high-score table to stdout (--scores flag).
func printScores() {
	top := store.TopScores(10)
	if len(top) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}
	fmt.Println("=== High Scores ===")
	for rank, entry := range top {
		fmt.Printf("%2d. %s - %d pts (%d lines, level %d)\n",
			rank+1, entry.Profile, entry.Score, entry.Lines, entry.Level)
	}
}

// wrapFlex wraps a single primitive in a vertical flex so the centered
// form helper can size it.
func wrapFlex(p tview.Primitive) *tview.Flex {
	return tview.NewFlex().SetDirection(tview.FlexRow).AddItem(p, 0, 1, true)
}
