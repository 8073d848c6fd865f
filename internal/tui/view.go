package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ukaji3/manning-go/pkg/manning/models"
	"github.com/ukaji3/manning-go/pkg/manning/output"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(6)
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	ngStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Italic(true)
	planStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// View implements tea.Model.
func (a *App) View() string {
	switch a.mode {
	case modePicker:
		return a.pickerView()
	case modeSave:
		return a.saveView()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("📅 " + a.DateDisplay()))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("ctrl+o エクセル読込み · ctrl+p スクショ · tab 移動 · ctrl+c 終了"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, a.inputsView(), "    ", a.tableView()))
	b.WriteString("\n\n")

	if n := a.Roster().Vacancies(); n > 0 {
		b.WriteString(ngStyle.Render(fmt.Sprintf("❌ シフトに不備があります（あと%d名未配置）", n)))
	} else {
		b.WriteString(okStyle.Render("✅ 今日の配置はOKです！"))
	}
	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(planStyle.Render(headerStyle.Render("★本日の予定") + "\n" + a.plan.View()))
	return b.String()
}

func (a *App) inputsView() string {
	lines := make([]string, len(a.inputs))
	for i := range a.inputs {
		lines[i] = labelStyle.Render(a.label(i)+":") + " " + a.inputs[i].View()
	}
	return strings.Join(lines, "\n")
}

// tableView shows the roster as a one-row table under the shift labels.
func (a *App) tableView() string {
	headers := make([]string, len(a.inputs))
	names := make([]string, len(a.inputs))
	for i, name := range a.Roster() {
		headers[i] = a.label(i)
		if name == "" {
			name = output.Vacant
		}
		names[i] = name
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true)
			}
			return cellStyle
		}).
		Headers(headers...).
		Row(names...).
		Render()
}

func (a *App) pickerView() string {
	return headerStyle.Render("勤務表を選択") + "\n" +
		hintStyle.Render("enter 選択 · esc/q 戻る") + "\n\n" +
		a.picker.View()
}

func (a *App) saveView() string {
	return headerStyle.Render("スクリーンショットの保存") + "\n" +
		hintStyle.Render("enter 保存 · esc 取消") + "\n\n" +
		a.savePrompt.View()
}

func (a *App) label(i int) string {
	if i < len(a.cfg.Shifts) && a.cfg.Shifts[i].Label != "" {
		return a.cfg.Shifts[i].Label
	}
	return models.Shift(i).String()
}
