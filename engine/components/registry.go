package components

import (
	"fmt"

	"github.com/spaghettifunk/anima-math/engine/core"
)

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

type cameraLookup struct {
	referenceCount uint16
	camera         *Camera
}

/**
 * @brief Hands out named cameras with reference counting. A default,
 * non-registered camera always exists as a fallback.
 */
type CameraRegistry struct {
	maxCameraCount int
	cameras        map[string]*cameraLookup
	defaultCamera  *Camera
}

/**
 * @brief Creates a registry able to hold maxCameraCount named cameras
 * besides the default one.
 */
func NewCameraRegistry(maxCameraCount int) (*CameraRegistry, error) {
	if maxCameraCount <= 0 {
		err := fmt.Errorf("func NewCameraRegistry - maxCameraCount must be > 0: %w", core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}
	return &CameraRegistry{
		maxCameraCount: maxCameraCount,
		cameras:        make(map[string]*cameraLookup, maxCameraCount),
		defaultCamera:  NewCamera(),
	}, nil
}

/**
 * @brief Acquires a camera by name.
 * If one is not found, a new one is created and returned.
 * Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 * @return The camera, or an error when the registry is full.
 */
func (r *CameraRegistry) Acquire(name string) (*Camera, error) {
	if name == DEFAULT_CAMERA_NAME {
		return r.defaultCamera, nil
	}
	lookup, ok := r.cameras[name]
	if !ok {
		if len(r.cameras) >= r.maxCameraCount {
			err := fmt.Errorf("func Acquire failed to register camera '%s', %d cameras in use", name, len(r.cameras))
			core.LogError(err.Error())
			return nil, err
		}
		// Create/register the new camera.
		core.LogDebug("Creating new camera named '%s'...", name)
		lookup = &cameraLookup{camera: NewCamera()}
		r.cameras[name] = lookup
	}
	lookup.referenceCount++
	return lookup.camera, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is dropped
 * and the name is usable by a new camera.
 *
 * @param name The name of the camera to release.
 */
func (r *CameraRegistry) Release(name string) {
	if name == DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	lookup, ok := r.cameras[name]
	if !ok {
		core.LogWarn("Release failed lookup for camera '%s'. Nothing was done.", name)
		return
	}
	lookup.referenceCount--
	if lookup.referenceCount < 1 {
		lookup.camera.Reset()
		delete(r.cameras, name)
	}
}

/**
 * @brief Gets the default camera.
 */
func (r *CameraRegistry) GetDefault() *Camera {
	return r.defaultCamera
}

// Count returns the number of registered named cameras.
func (r *CameraRegistry) Count() int {
	return len(r.cameras)
}
