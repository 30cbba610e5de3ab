package vision

// Vision looks up targets in the latest camera result
type Vision struct {
	camera Camera
}

func NewVision(camera Camera) *Vision {
	return &Vision{
		camera: camera,
	}
}

func (v *Vision) GetCamera() Camera {
	return v.camera
}

// GetTargetForTag returns the first target with the given fiducial id.
// The second return value is false if the camera currently doesn't see the tag.
func (v *Vision) GetTargetForTag(fiducialId int) (Target, bool, error) {
	result, err := v.camera.GetLatestResult()
	if err != nil {
		return Target{}, false, err
	}
	if !result.HasTargets() {
		return Target{}, false, nil
	}
	for _, target := range result.Targets {
		if target.FiducialId == fiducialId {
			return target, true, nil
		}
	}
	return Target{}, false, nil
}
