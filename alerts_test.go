package alerts

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bfkr/alerts/pkg/clock"
	"github.com/bfkr/alerts/pkg/dom"
	"github.com/bfkr/alerts/pkg/loop"
	"github.com/bfkr/alerts/pkg/theme"
)

func TestNewAttachesDialogOnly(t *testing.T) {
	tree := dom.NewTree()
	a := New(tree, clock.NewManual())

	if tree.ByID("bfkr-dialog-overlay") == nil {
		t.Fatal("dialog overlay should be attached on New")
	}
	if a.Toast.Containers() != 0 {
		t.Errorf("Containers() = %d, want 0", a.Toast.Containers())
	}
	if a.Toast.Position() != TopRight {
		t.Errorf("Position() = %q", a.Toast.Position())
	}
	if a.Dialog.Theme() != theme.Modern {
		t.Errorf("Dialog.Theme() = %q", a.Dialog.Theme())
	}
}

func TestSharedColors(t *testing.T) {
	tree := dom.NewTree()
	manual := clock.NewManual()
	a := New(tree, manual)

	a.Config.SetColors(map[string]string{Success: "#000000"})
	if got := a.Config.Colors()[Success]; got != "#000000" {
		t.Fatalf("Colors()[success] = %q", got)
	}

	a.Toast.Show("saved", Success, ToastOptions{})
	toasts := tree.ByClass("bfkr-toast")
	if len(toasts) != 1 {
		t.Fatalf("got %d toasts", len(toasts))
	}
	if bg := toasts[0].Style("background"); bg != "#000000" {
		t.Errorf("background = %q", bg)
	}

	a.Dialog.Alert("hello", DialogOptions{Type: Success})
	icon := tree.ByID("bfkr-dialog-icon")
	if c := icon.Style("color"); c != "#000000" {
		t.Errorf("dialog icon color = %q", c)
	}

	manual.Advance(3500*time.Millisecond + 250*time.Millisecond)
	if n := len(tree.ByClass("bfkr-toast")); n != 0 {
		t.Errorf("toast should be removed, %d left", n)
	}
}

func TestSettings(t *testing.T) {
	tree := dom.NewTree()
	a := New(tree, clock.NewManual(), WithSettings(Settings{
		Colors:      map[string]string{Info: "#123456"},
		Position:    BottomLeft,
		ToastTheme:  theme.Glass,
		DialogTheme: "nope",
	}))

	if a.Toast.Position() != BottomLeft {
		t.Errorf("Position() = %q", a.Toast.Position())
	}
	if tree.ByID("bfkr-toast-container-bottom-left") == nil {
		t.Error("container for configured position should exist")
	}
	if a.Toast.Theme() != theme.Glass {
		t.Errorf("Toast.Theme() = %q", a.Toast.Theme())
	}
	if a.Dialog.Theme() != theme.Modern {
		t.Errorf("unknown dialog theme should fall back, got %q", a.Dialog.Theme())
	}
	if a.Config.Colors()[Info] != "#123456" {
		t.Errorf("Colors() = %v", a.Config.Colors())
	}
}

func TestSharedRegistry(t *testing.T) {
	reg := theme.NewRegistry()
	a := New(dom.NewTree(), clock.NewManual(), WithRegistry(reg))
	b := New(dom.NewTree(), clock.NewManual(), WithRegistry(reg))

	a.Config.SetColors(map[string]string{Dark: "#010101"})
	if b.Config.Colors()[Dark] != "#010101" {
		t.Error("registry should be shared")
	}
	if a.Config.Registry() != reg {
		t.Error("Registry() should return the shared registry")
	}
}

func TestNewRequiresScheduler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New without a scheduler should panic")
		}
	}()
	New(dom.NewTree(), nil)
}

func quietLoop(size int) *loop.Loop {
	return loop.New(slog.New(slog.NewTextHandler(io.Discard, nil)), size)
}

// waitForNoToasts polls on the loop until every toast has been removed.
func waitForNoToasts(t *testing.T, lp *loop.Loop, a *Alerts) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		var active int
		if err := lp.Call(context.Background(), func() { active = a.Toast.Active(TopRight) }); err != nil {
			t.Fatal(err)
		}
		if active == 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("%d toasts still active", active)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Real timers must deliver hide and removal on the loop; run with -race.
func TestRealTimersRunOnLoop(t *testing.T) {
	lp := quietLoop(0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go lp.Run(ctx)

	tree := dom.NewTree()
	a := New(tree, clock.Real(lp))

	for i := 0; i < 50; i++ {
		err := lp.Call(context.Background(), func() {
			a.Toast.Show("tick", Info, ToastOptions{Duration: time.Millisecond})
		})
		if err != nil {
			t.Fatal(err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	waitForNoToasts(t, lp, a)

	var left int
	lp.Call(context.Background(), func() { left = len(tree.ByClass("bfkr-toast")) })
	if left != 0 {
		t.Errorf("%d toast elements still attached", left)
	}
}

func TestTimersSurviveFullQueue(t *testing.T) {
	lp := quietLoop(2)
	tree := dom.NewTree()
	a := New(tree, clock.Real(lp))

	// The loop is not running yet, so expiring timers outnumber the queue.
	for i := 0; i < 5; i++ {
		a.Toast.Show("queued", Info, ToastOptions{Duration: 10 * time.Millisecond})
	}
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go lp.Run(ctx)

	waitForNoToasts(t, lp, a)
}
