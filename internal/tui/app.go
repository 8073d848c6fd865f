// internal/tui/app.go
//
// The roster window. bubbletea drives it with the usual Model / Update / View
// loop: every user action arrives as a message and is handled to completion
// inside Update, including spreadsheet loads. Screenshots are the one
// round-trip: a command captures the current frame and hands it back as a
// message, after which the user picks where to save it.

package tui

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/ukaji3/manning-go/internal/config"
	"github.com/ukaji3/manning-go/internal/snapshot"
	"github.com/ukaji3/manning-go/pkg/manning"
	"github.com/ukaji3/manning-go/pkg/manning/models"
	"github.com/ukaji3/manning-go/pkg/manning/parser"
)

// appMode is which surface currently receives keys.
type appMode int

const (
	modeMain   appMode = iota // roster fields and plan
	modePicker                // choosing a workbook
	modeSave                  // entering the screenshot path
)

// focusPlan follows the four shift inputs in the focus ring.
const focusPlan = models.ShiftCount

var weekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// LoadFunc loads a roster from a workbook path.
type LoadFunc func(path string, opts manning.Options) (*models.LoadResult, error)

// openFileMsg asks the app to load a workbook.
type openFileMsg struct{ path string }

// screenshotMsg carries the frame captured for a screenshot request.
type screenshotMsg struct{ frame string }

// screenshotSavedMsg reports the outcome of writing a screenshot.
type screenshotSavedMsg struct {
	path string
	err  error
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithToday overrides the date the roster is loaded for.
func WithToday(t time.Time) AppOption {
	return func(a *App) {
		if !t.IsZero() {
			a.today = t
		}
	}
}

// WithLoader replaces the workbook loader.
func WithLoader(load LoadFunc) AppOption {
	return func(a *App) {
		if load != nil {
			a.load = load
		}
	}
}

// WithInitialFile loads path as soon as the program starts.
func WithInitialFile(path string) AppOption {
	return func(a *App) {
		a.initialFile = path
	}
}

// App holds the window state for one session. Nothing is persisted.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	load   LoadFunc

	today       time.Time
	initialFile string

	mode   appMode
	focus  int
	inputs [models.ShiftCount]textinput.Model
	plan   textarea.Model
	status string

	picker     filepicker.Model
	savePrompt textinput.Model
	pending    *image.RGBA
	face       font.Face

	width  int
	height int
}

// NewApp creates the roster window.
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		cfg:    cfg,
		logger: zap.NewNop(),
		load:   manning.Load,
		today:  cfg.Now(),
	}
	for _, opt := range opts {
		opt(a)
	}

	for i := range a.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "未入力"
		in.Width = 16
		a.inputs[i] = in
	}
	a.inputs[0].Focus()

	a.plan = textarea.New()
	a.plan.Placeholder = "本日の予定を入力"
	a.plan.ShowLineNumbers = false
	a.plan.SetWidth(60)
	a.plan.SetHeight(8)

	a.savePrompt = textinput.New()
	a.savePrompt.Prompt = "保存先: "

	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if a.initialFile != "" {
		path := a.initialFile
		cmds = append(cmds, func() tea.Msg { return openFileMsg{path: path} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.plan.SetWidth(max(20, msg.Width-8))
		a.picker.Height = max(5, msg.Height-6)
		return a, nil

	case openFileMsg:
		a.loadFile(msg.path)
		return a, nil

	case screenshotMsg:
		return a, a.beginSave(msg.frame)

	case screenshotSavedMsg:
		if msg.err != nil {
			a.logger.Error("screenshot save failed", zap.String("path", msg.path), zap.Error(msg.err))
		} else {
			a.logger.Info("screenshot saved", zap.String("path", msg.path))
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.mode {
		case modePicker:
			return a.updatePicker(msg)
		case modeSave:
			return a.updateSave(msg)
		default:
			return a.updateMain(msg)
		}
	}

	// Directory listings and cursor blinks
	if a.mode == modePicker {
		return a.updatePicker(msg)
	}
	return a, a.updateFocused(msg)
}

func (a *App) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return a, a.setFocus((a.focus + 1) % (focusPlan + 1))
	case "shift+tab":
		return a, a.setFocus((a.focus + focusPlan) % (focusPlan + 1))
	case "ctrl+o":
		return a, a.openPicker()
	case "ctrl+p":
		return a, a.requestScreenshot()
	}
	return a, a.updateFocused(msg)
}

func (a *App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "ctrl+o":
			a.mode = modeMain
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)
	if didSelect, path := a.picker.DidSelectFile(msg); didSelect {
		a.mode = modeMain
		a.loadFile(path)
		return a, nil
	}
	if didSelect, path := a.picker.DidSelectDisabledFile(msg); didSelect {
		a.status = fmt.Sprintf("❌ 対応していない形式です: %s", filepath.Base(path))
	}
	return a, cmd
}

func (a *App) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeMain
		a.pending = nil
		return a, nil
	case "enter":
		img := a.pending
		path := snapshot.PNGPath(a.savePrompt.Value())
		a.mode = modeMain
		a.pending = nil
		a.savePrompt.Blur()
		if img == nil || path == ".png" {
			return a, nil
		}
		return a, func() tea.Msg {
			return screenshotSavedMsg{path: path, err: snapshot.SavePNG(path, img)}
		}
	}
	var cmd tea.Cmd
	a.savePrompt, cmd = a.savePrompt.Update(msg)
	return a, cmd
}

// updateFocused forwards a message to the focused field.
func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if a.focus == focusPlan {
		a.plan, cmd = a.plan.Update(msg)
		return cmd
	}
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return cmd
}

func (a *App) setFocus(target int) tea.Cmd {
	for i := range a.inputs {
		a.inputs[i].Blur()
	}
	a.plan.Blur()
	a.focus = target
	if target == focusPlan {
		return a.plan.Focus()
	}
	return a.inputs[target].Focus()
}

func (a *App) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = parser.Extensions
	if dir := a.pickerDir(); dir != "" {
		fp.CurrentDirectory = dir
	}
	if a.height > 0 {
		fp.Height = max(5, a.height-6)
	}
	a.picker = fp
	a.mode = modePicker
	return a.picker.Init()
}

func (a *App) pickerDir() string {
	if a.initialFile != "" {
		return filepath.Dir(a.initialFile)
	}
	return ""
}

// loadFile reads a workbook and fills the shifts it found names for.
// Shifts with no names, and every shift on failure, keep their text.
func (a *App) loadFile(path string) {
	res, err := a.load(path, manning.Options{Today: a.today, Shifts: a.cfg.Shifts})
	a.status = manning.StatusMessage(res, err)
	if err != nil {
		a.logger.Warn("roster load failed", zap.String("path", path), zap.Error(err))
		return
	}
	a.SetRoster(a.Roster().Apply(res.Assignments, a.cfg.JoinSeparator()))
	a.logger.Info("roster loaded",
		zap.String("path", path),
		zap.String("sheet", res.Sheet),
		zap.Int("row", res.Position.Row+1),
		zap.Int("col", res.Position.Col+1),
		zap.Int("staff", res.Assignments.Count()))
}

// requestScreenshot captures the frame as it is now and delivers it as a message.
func (a *App) requestScreenshot() tea.Cmd {
	frame := a.View()
	return func() tea.Msg { return screenshotMsg{frame: frame} }
}

// beginSave rasterizes a captured frame and asks where to write it.
func (a *App) beginSave(frame string) tea.Cmd {
	a.pending = snapshot.Rasterize(frame, a.fontFace())
	a.savePrompt.SetValue(filepath.Join(a.cfg.SnapshotDir(), "manning_"+a.today.Format("20060102")+".png"))
	a.savePrompt.CursorEnd()
	a.mode = modeSave
	return a.savePrompt.Focus()
}

func (a *App) fontFace() font.Face {
	if a.face != nil {
		return a.face
	}
	if a.cfg.Font == "" {
		a.logger.Warn("no screenshot font configured, non-ASCII text is drawn as ?; set font: to a TTF or OTF file")
	}
	face, err := snapshot.LoadFace(a.cfg.Font)
	if err != nil {
		a.logger.Warn("font load failed, using bitmap face", zap.String("font", a.cfg.Font), zap.Error(err))
		face, _ = snapshot.LoadFace("")
	}
	a.face = face
	return face
}

// Roster returns the text of the four shift fields.
func (a *App) Roster() models.Roster {
	var r models.Roster
	for i := range a.inputs {
		r[i] = a.inputs[i].Value()
	}
	return r
}

// SetRoster replaces the text of the four shift fields.
func (a *App) SetRoster(r models.Roster) {
	for i := range a.inputs {
		a.inputs[i].SetValue(r[i])
	}
}

// Plan returns the free-text plan for the day.
func (a *App) Plan() string {
	return a.plan.Value()
}

// Status returns the message from the last load.
func (a *App) Status() string {
	return a.status
}

// DateDisplay formats today as shown in the header, e.g. 3月14日(木).
func (a *App) DateDisplay() string {
	return fmt.Sprintf("%d月%d日(%s)", int(a.today.Month()), a.today.Day(), weekdays[a.today.Weekday()])
}
