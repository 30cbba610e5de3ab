package sensors

import "sync"

// VirtualEncoder returns a value that is set programmatically, used for simulation and tests.
type VirtualEncoder struct {
	ID               string  `json:"id"`
	Raw              float64 `json:"raw"`
	DistancePerPulse float64 `json:"distancePerPulse"`
	// Err is returned by GetDistance when set
	Err error `json:"-"`

	mu sync.Mutex
}

func (encoder *VirtualEncoder) GetId() string {
	return encoder.ID
}

func (encoder *VirtualEncoder) GetDistance() (float64, error) {
	encoder.mu.Lock()
	defer encoder.mu.Unlock()
	if encoder.Err != nil {
		return 0, encoder.Err
	}
	distancePerPulse := encoder.DistancePerPulse
	if distancePerPulse == 0 {
		distancePerPulse = 1
	}
	return encoder.Raw * distancePerPulse, nil
}

func (encoder *VirtualEncoder) SetRaw(raw float64) {
	encoder.mu.Lock()
	defer encoder.mu.Unlock()
	encoder.Raw = raw
}

func (encoder *VirtualEncoder) SetError(err error) {
	encoder.mu.Lock()
	defer encoder.mu.Unlock()
	encoder.Err = err
}

type VirtualDigitalInput struct {
	ID    string `json:"id"`
	Value bool   `json:"value"`

	mu sync.Mutex
}

func (input *VirtualDigitalInput) GetId() string {
	return input.ID
}

func (input *VirtualDigitalInput) Get() (bool, error) {
	input.mu.Lock()
	defer input.mu.Unlock()
	return input.Value, nil
}

func (input *VirtualDigitalInput) Set(value bool) {
	input.mu.Lock()
	defer input.mu.Unlock()
	input.Value = value
}
