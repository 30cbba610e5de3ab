package arm

import "fmt"

// GetHandlerSpeed returns the speed used to drive the handler motor
func (a *Arm) GetHandlerSpeed() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.handlerSpeed
}

func (a *Arm) HandlerMotorDriveForward() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.setHandler(a.handlerSpeed)
}

func (a *Arm) HandlerMotorDriveBackward() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.setHandler(-a.handlerSpeed)
}

func (a *Arm) HandlerMotorStop() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.setHandler(0)
}

func (a *Arm) setHandler(speed float64) error {
	if a.handlerMotor == nil {
		return fmt.Errorf("arm: no handler motor configured")
	}
	err := a.handlerMotor.Set(speed)
	if err != nil {
		return fmt.Errorf("arm: handler: %w", err)
	}
	return nil
}
