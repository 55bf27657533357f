package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := Prometheus(WithRegistry(reg), WithNamespace("test"))

	c.ToastShown("success")
	c.ToastShown("success")
	c.ToastShown("error")
	c.ToastDismissed(CauseTimeout)
	c.ToastRemoved()
	c.DialogOpened("confirm")
	c.DialogSettled("confirm", ResultConfirmed)

	if got := testutil.ToFloat64(c.toastsShown.WithLabelValues("success")); got != 2 {
		t.Errorf("success shown = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.toastsActive); got != 2 {
		t.Errorf("active = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.toastsDismissed.WithLabelValues(CauseTimeout)); got != 1 {
		t.Errorf("dismissed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.dialogResults.WithLabelValues("confirm", ResultConfirmed)); got != 1 {
		t.Errorf("results = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "test_dialogs_opened_total" {
			found = true
		}
	}
	if !found {
		t.Error("namespaced metric not registered")
	}
}

func TestNopSatisfiesRecorder(t *testing.T) {
	var r Recorder = Nop{}
	r.ToastShown("info")
	r.DialogSettled("alert", ResultClosed)
}
