package launcher

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"ragctl/internal/pip"
)

// fakeEnv records which steps ran and what Dispatch received.
type fakeEnv struct {
	out        bytes.Buffer
	pipBin     string
	pipErr     error
	healthy    bool
	installed  bool
	probed     bool
	dispatched []Mode
}

func (f *fakeEnv) launcher(input string) *Launcher {
	return &Launcher{
		In:        strings.NewReader(input),
		Out:       &f.out,
		PyVersion: func(context.Context) string { return "3.11" },
		DetectPip: func() (string, error) { return f.pipBin, f.pipErr },
		InstallPip: func(context.Context, string, string) error {
			f.installed = true
			return nil
		},
		Healthy: func(context.Context) bool {
			f.probed = true
			return f.healthy
		},
		HealthURL: "http://192.168.81.253:8081/v1/health",
		Dispatch: func(m Mode) error {
			f.dispatched = append(f.dispatched, m)
			return nil
		},
	}
}

func TestRun_NormalModeHealthy(t *testing.T) {
	f := &fakeEnv{pipBin: "pip3", healthy: true}
	if err := f.launcher("1\n").Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	out := f.out.String()
	if !strings.Contains(out, "✅ RAG 服务器健康状态正常") {
		t.Errorf("missing healthy message in output:\n%s", out)
	}
	if strings.Contains(out, "无效输入") {
		t.Errorf("unexpected fallback notice for valid input:\n%s", out)
	}
	if len(f.dispatched) != 1 || f.dispatched[0] != ModeNormal {
		t.Fatalf("expected normal dispatch, got %v", f.dispatched)
	}
}

func TestRun_HotReloadUnhealthy(t *testing.T) {
	f := &fakeEnv{pipBin: "pip3", healthy: false}
	if err := f.launcher("2\n").Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	out := f.out.String()
	if !strings.Contains(out, "http://192.168.81.253:8081/v1/health") {
		t.Errorf("warning should name the health endpoint:\n%s", out)
	}
	if !strings.Contains(out, "热重载模式") {
		t.Errorf("missing hot-reload banner:\n%s", out)
	}
	if len(f.dispatched) != 1 || f.dispatched[0] != ModeHotReload {
		t.Fatalf("expected hot-reload dispatch, got %v", f.dispatched)
	}
}

func TestRun_InvalidInputDefaults(t *testing.T) {
	for _, input := range []string{"xyz\n", "3\n", "\n", ""} {
		f := &fakeEnv{pipBin: "pip3", healthy: true}
		if err := f.launcher(input).Run(context.Background()); err != nil {
			t.Fatalf("Run(%q) error: %v", input, err)
		}
		if !strings.Contains(f.out.String(), "使用默认的普通模式") {
			t.Errorf("input %q: missing default-mode notice", input)
		}
		if len(f.dispatched) != 1 || f.dispatched[0] != ModeNormal {
			t.Fatalf("input %q: expected normal dispatch, got %v", input, f.dispatched)
		}
	}
}

func TestRun_NoPipIsFatal(t *testing.T) {
	f := &fakeEnv{pipErr: pip.ErrNotFound}
	err := f.launcher("1\n").Run(context.Background())
	if err == nil {
		t.Fatal("expected error when no pip is available")
	}
	if !strings.Contains(f.out.String(), "未找到 pip") {
		t.Errorf("missing pip-not-found message:\n%s", f.out.String())
	}
	// Nothing past the fatal step may run.
	if f.installed || f.probed || len(f.dispatched) != 0 {
		t.Fatalf("steps ran after fatal pip detection: installed=%v probed=%v dispatched=%v",
			f.installed, f.probed, f.dispatched)
	}
}

// The probe outcome must never change which program is dispatched.
func TestRun_HealthNeverAffectsDispatch(t *testing.T) {
	cases := []struct {
		input   string
		healthy bool
		want    Mode
	}{
		{"1\n", true, ModeNormal},
		{"1\n", false, ModeNormal},
		{"2\n", true, ModeHotReload},
		{"2\n", false, ModeHotReload},
	}
	for _, c := range cases {
		f := &fakeEnv{pipBin: "pip3", healthy: c.healthy}
		if err := f.launcher(c.input).Run(context.Background()); err != nil {
			t.Fatalf("Run(%q, healthy=%v) error: %v", c.input, c.healthy, err)
		}
		if len(f.dispatched) != 1 || f.dispatched[0] != c.want {
			t.Fatalf("input %q healthy=%v: expected %v dispatch, got %v",
				c.input, c.healthy, c.want, f.dispatched)
		}
	}
}

func TestRun_InstallResultIgnored(t *testing.T) {
	f := &fakeEnv{pipBin: "pip3", healthy: true}
	l := f.launcher("1\n")
	l.InstallPip = func(context.Context, string, string) error {
		return context.DeadlineExceeded // any failure
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("install failure must not abort the launch: %v", err)
	}
	if len(f.dispatched) != 1 {
		t.Fatalf("expected dispatch despite failed install, got %v", f.dispatched)
	}
}
