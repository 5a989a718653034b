package launcher

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"ragctl/internal/pip"
	"ragctl/internal/pyenv"
	"ragctl/internal/rag"
	"ragctl/internal/system"
)

const (
	// Entry scripts the launcher can hand off to.
	ChatScript      = "gradio_chat_app.py"
	HotReloadScript = "gradio_hot_reload.py"

	// Manifest names the chat app's Python dependency file.
	Manifest = "requirements.txt"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4d9375"))

// Launcher wires the sequential launch steps together. Collaborators are
// fields so tests can swap in fakes; New fills in the real ones.
type Launcher struct {
	In  io.Reader
	Out io.Writer

	PyVersion  func(ctx context.Context) string
	DetectPip  func() (string, error)
	InstallPip func(ctx context.Context, bin, manifest string) error
	Healthy    func(ctx context.Context) bool
	HealthURL  string
	Dispatch   func(mode Mode) error
}

// New returns a Launcher bound to stdin/stdout and the real environment.
func New() *Launcher {
	client := rag.NewClient()
	return &Launcher{
		In:         os.Stdin,
		Out:        os.Stdout,
		PyVersion:  pyenv.Version,
		DetectPip:  pip.Detect,
		InstallPip: pip.Install,
		Healthy:    client.Healthy,
		HealthURL:  client.HealthURL(),
		Dispatch:   Dispatch,
	}
}

// SelectMode prints the fixed two-option menu and reads one line from In.
// Unrecognized or empty input (EOF included) falls back to ModeNormal with
// a notice; no input is ever an error.
func (l *Launcher) SelectMode() Mode {
	fmt.Fprintln(l.Out, titleStyle.Render("NVIDIA RAG 聊天应用启动器"))
	fmt.Fprintln(l.Out, "请选择启动方式：")
	fmt.Fprintln(l.Out, "  1) 普通模式")
	fmt.Fprintln(l.Out, "  2) 热重载模式（代码修改后自动重启）")
	fmt.Fprint(l.Out, "请输入 [1/2]: ")

	line, _ := bufio.NewReader(l.In).ReadString('\n')
	mode, ok := ParseMode(line)
	if !ok {
		fmt.Fprintln(l.Out, "⚠️  无效输入，使用默认的普通模式")
	}
	return mode
}

// Run executes the launch sequence strictly in order: mode menu, Python
// version display, pip detection, dependency install, health probe, then
// hand-off. Only a missing pip aborts; every other failure is reported
// and skipped past.
func (l *Launcher) Run(ctx context.Context) error {
	mode := l.SelectMode()

	fmt.Fprintf(l.Out, "🐍 Python 版本: %s\n", l.PyVersion(ctx))

	bin, err := l.DetectPip()
	if err != nil {
		fmt.Fprintln(l.Out, "❌ 未找到 pip，请先安装 Python 和 pip")
		return err
	}

	fmt.Fprintln(l.Out, "📦 正在安装依赖…")
	// The install's own outcome is deliberately not checked; a broken
	// install surfaces when the chat app itself starts.
	if err := l.InstallPip(ctx, bin, Manifest); err != nil {
		system.Logger.Debug("dependency install returned error", "pip", bin, "err", err)
	}

	if l.Healthy(ctx) {
		fmt.Fprintln(l.Out, "✅ RAG 服务器健康状态正常")
	} else {
		fmt.Fprintf(l.Out, "⚠️  无法连接 RAG 服务器（%s），请先启动 RAG 服务\n", l.HealthURL)
	}

	if mode == ModeHotReload {
		fmt.Fprintln(l.Out, "🚀 正在以热重载模式启动聊天应用…")
	} else {
		fmt.Fprintln(l.Out, "🚀 正在启动聊天应用…")
	}
	return l.Dispatch(mode)
}
