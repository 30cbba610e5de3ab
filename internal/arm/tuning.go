package arm

import (
	"github.com/markusressel/notebot/internal/tuning"
)

// PullTuning reads the latest gains and the handler speed from the dashboard.
// The entries are created on first use.
func (a *Arm) PullTuning(dashboard *tuning.Dashboard) {
	a.mu.Lock()
	defer a.mu.Unlock()

	tab := dashboard.Tab(TuningTab)
	kP := tab.Add(TuningKP, a.controller.GetP(), tuning.EntryOptions{})
	kI := tab.Add(TuningKI, a.controller.GetI(), tuning.EntryOptions{})
	kD := tab.Add(TuningKD, a.controller.GetD(), tuning.EntryOptions{})
	handlerSpeed := tab.Add(TuningHandlerSpeed, a.defaultHandlerSpeed, tuning.EntryOptions{Min: -1, Max: 1})

	a.controller.SetPID(kP.Get(), kI.Get(), kD.Get())
	a.handlerSpeed = handlerSpeed.Get()
}
