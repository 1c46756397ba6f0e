package playground

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/spaghettifunk/anima-math/engine/components"
	"github.com/spaghettifunk/anima-math/engine/config"
	"github.com/spaghettifunk/anima-math/engine/containers"
	"github.com/spaghettifunk/anima-math/engine/core"
	"github.com/spaghettifunk/anima-math/engine/geometry"
	"github.com/spaghettifunk/anima-math/engine/jobs"
	"github.com/spaghettifunk/anima-math/engine/math"
)

const (
	CAMERA_NAME string = "playground"
	// frames kept in the report history
	HISTORY_SIZE int = 120

	bobFrequency   float32 = 2.0
	pulseFrequency float32 = 3.0
)

/**
 * @brief A cube in the scene. The base transform comes from the scene file;
 * Transform is the animated placement of the current frame.
 */
type Object struct {
	ID        string
	Name      string
	Mesh      *geometry.Mesh
	Base      math.Transform
	Transform math.Transform

	spin  float32 // radians per second
	bob   float32
	pulse float32
	phase float32

	/** @brief Model matrix of the current frame. */
	Model math.Mat4
	/** @brief Model-view-projection matrix ready for upload (column-major). */
	MVP    [16]float32
	Bounds math.AABB
	Sphere math.Sphere
}

// FrameRecord summarises one simulated frame.
type FrameRecord struct {
	Frame        int
	Time         float32
	Visible      int
	SphereCulled int
	BoxCulled    int
	Picked       string
	PickDistance float32
}

type Playground struct {
	cfg     *config.Config
	cameras *components.CameraRegistry
	camera  *components.Camera
	objects []*Object
	jobs    *jobs.JobSystem
	clock   *core.Clock
	stats   *core.FrameStats
	history *containers.RingQueue[FrameRecord]
}

/**
 * @brief Builds the camera and objects described by cfg.
 */
func New(cfg *config.Config) (*Playground, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cameras, err := components.NewCameraRegistry(1)
	if err != nil {
		return nil, err
	}
	camera, err := cameras.Acquire(CAMERA_NAME)
	if err != nil {
		return nil, err
	}
	camera.SetFieldOfView(cfg.Camera.FOV)
	camera.SetAspectRatio(cfg.Camera.Width, cfg.Camera.Height)
	camera.SetClipPlanes(cfg.Camera.Near, cfg.Camera.Far)
	camera.SetPosition(cfg.Camera.Position.ToVec3())
	camera.LookAt(cfg.Camera.Target.ToVec3())

	objects := buildObjects(cfg)

	js, err := jobs.NewJobSystem(runtime.NumCPU(), len(objects))
	if err != nil {
		cameras.Release(CAMERA_NAME)
		return nil, err
	}

	core.LogDebug("playground created with %d objects and %d workers", len(objects), js.Workers())

	return &Playground{
		cfg:     cfg,
		cameras: cameras,
		camera:  camera,
		objects: objects,
		jobs:    js,
		clock:   core.NewClock(),
		stats:   core.NewFrameStats(),
		history: containers.NewRingQueue[FrameRecord](HISTORY_SIZE),
	}, nil
}

func buildObjects(cfg *config.Config) []*Object {
	rng := math.NewRandom(cfg.Seed)
	objects := make([]*Object, 0, cfg.Ring.Count+len(cfg.Objects))

	for i := 0; i < cfg.Ring.Count; i++ {
		angle := math.K_PI_2 * float32(i) / float32(cfg.Ring.Count)
		position := math.NewVec3(cfg.Ring.Radius*math.Cos(angle), 0, cfg.Ring.Radius*math.Sin(angle))
		// face the centre of the ring
		facing := math.NewQuatFromAxisAngle(math.NewVec3Up(), math.Atan2(position.X, position.Z))
		objects = append(objects, newObject(
			"",
			math.NewTransformFromPositionRotation(position, facing),
			cfg.Ring.Size,
			cfg.Ring.Spin, cfg.Ring.Bob, cfg.Ring.Pulse,
			math.RandomInRange(rng, 0, math.K_PI_2),
		))
	}

	for _, o := range cfg.Objects {
		rotation := math.NewQuatFromEuler(
			math.DegToRad(o.Rotation[0]),
			math.DegToRad(o.Rotation[1]),
			math.DegToRad(o.Rotation[2]),
		)
		objects = append(objects, newObject(
			o.Name,
			math.NewTransformFromPositionRotationScale(o.Position.ToVec3(), rotation, o.Scale.ToVec3()),
			o.Size,
			o.Spin, o.Bob, o.Pulse,
			math.RandomInRange(rng, 0, math.K_PI_2),
		))
	}
	return objects
}

func newObject(name string, base math.Transform, size, spinDegrees, bob, pulse, phase float32) *Object {
	id := uuid.NewString()
	if name == "" {
		name = "object-" + id[:8]
	}
	o := &Object{
		ID:        id,
		Name:      name,
		Mesh:      geometry.GenerateCube(size, size, size, 1, 1, name),
		Base:      base,
		Transform: base,
		spin:      math.DegToRad(spinDegrees),
		bob:       bob,
		pulse:     pulse,
		phase:     phase,
	}
	o.updateBounds()
	return o
}

// animate places the object at time t.
func (o *Object) animate(t float32) {
	spin := math.NewQuatFromAxisAngle(math.NewVec3Up(), o.spin*t)
	rotation := spin.Mul(o.Base.Rotation).Normalized()

	top := o.Base.Position.Add(math.NewVec3Up().MulScalar(o.bob))
	lift := (math.Sin(t*bobFrequency+o.phase) + 1.0) * 0.5
	position := o.Base.Position.Lerp(top, lift)

	scale := o.Base.Scale.MulScalar(1.0 + o.pulse*math.Sin(t*pulseFrequency+o.phase))

	o.Transform = math.NewTransformFromPositionRotationScale(position, rotation, scale)
}

func (o *Object) updateBounds() {
	o.Model = o.Transform.ToMat4()
	o.Bounds = o.Mesh.Extents.Transformed(o.Model)
	o.Sphere = math.NewSphere(o.Bounds.Center(), o.Bounds.Extents().Length())
}

func (p *Playground) Objects() []*Object {
	return p.objects
}

func (p *Playground) Camera() *components.Camera {
	return p.camera
}

func (p *Playground) orbitCamera(t float32) {
	target := p.cfg.Camera.Target.ToVec3()
	if p.cfg.Camera.OrbitSpeed == 0 {
		return
	}
	offset := p.cfg.Camera.Position.ToVec3().Sub(target)
	orbit := math.NewQuatFromAxisAngle(math.NewVec3Up(), p.cfg.Camera.OrbitSpeed*t)
	p.camera.SetPosition(target.Add(orbit.RotateVector(offset)))
	p.camera.LookAt(target)
}

/**
 * @brief Simulates a single frame: moves the camera, animates every object
 * on the job system, culls against the camera frustum and casts a picking
 * ray through the centre of the screen.
 */
func (p *Playground) Step(frame int) (FrameRecord, error) {
	t := float32(frame) * p.cfg.TimeStep
	record := FrameRecord{Frame: frame, Time: t}

	p.orbitCamera(t)
	viewProjection := p.camera.ViewProjection()

	tasks := make([]func() error, len(p.objects))
	for i, o := range p.objects {
		tasks[i] = func() error {
			o.animate(t)
			o.updateBounds()
			o.MVP = viewProjection.Mul(o.Model).ToColumnMajor()
			return nil
		}
	}
	if err := p.jobs.RunAll(tasks); err != nil {
		return record, fmt.Errorf("frame %d: %w", frame, err)
	}

	frustum := math.NewFrustumFromMat4(viewProjection)
	ray := p.camera.ScreenRay(0, 0)
	nearest := math.K_INFINITY

	for _, o := range p.objects {
		if !frustum.IntersectsSphere(o.Sphere) {
			record.SphereCulled++
			continue
		}
		if !frustum.IntersectsAABB(o.Bounds) {
			record.BoxCulled++
			continue
		}
		record.Visible++

		if hit, ok := ray.IntersectAABB(o.Bounds); ok && hit < nearest {
			nearest = hit
			record.Picked = o.Name
			record.PickDistance = hit
		}
	}

	p.history.Push(record)
	return record, nil
}

/**
 * @brief Runs the configured number of frames. When ctx is cancelled the
 * report covers the frames simulated so far and ctx.Err() is returned.
 */
func (p *Playground) Run(ctx context.Context) (*Report, error) {
	report := newReport(len(p.objects))
	frameClock := core.NewClock()

	p.clock.Start()
	var runErr error
	for frame := 0; frame < p.cfg.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			core.LogWarn("playground interrupted after %d of %d frames", frame, p.cfg.Frames)
			runErr = err
			break
		}

		frameClock.Start()
		record, err := p.Step(frame)
		if err != nil {
			runErr = err
			break
		}
		frameClock.Update()
		p.stats.Update(frameClock.Elapsed())
		report.add(record)
	}
	p.clock.Update()
	p.clock.Stop()

	report.Elapsed = p.clock.Elapsed()
	report.FPS, report.AverageFrameMS = p.stats.Frame()
	report.History = p.history.Items()
	return report, runErr
}

// Shutdown stops the workers and releases the camera.
func (p *Playground) Shutdown() error {
	p.cameras.Release(CAMERA_NAME)
	return p.jobs.Shutdown()
}

/**
 * @brief Outcome of a playground run.
 */
type Report struct {
	Frames         int
	Objects        int
	MinVisible     int
	MaxVisible     int
	AverageVisible float64
	SphereCulled   int
	BoxCulled      int
	// frames in which each object was the nearest hit of the centre ray
	Picks          map[string]int
	LastPicked     string
	AverageFrameMS float64
	FPS            float64
	Elapsed        time.Duration
	History        []FrameRecord

	visibleTotal int
}

func newReport(objects int) *Report {
	return &Report{
		Objects:    objects,
		MinVisible: -1,
		Picks:      make(map[string]int),
	}
}

func (r *Report) add(record FrameRecord) {
	r.Frames++
	r.visibleTotal += record.Visible
	r.AverageVisible = float64(r.visibleTotal) / float64(r.Frames)
	if r.MinVisible < 0 || record.Visible < r.MinVisible {
		r.MinVisible = record.Visible
	}
	if record.Visible > r.MaxVisible {
		r.MaxVisible = record.Visible
	}
	r.SphereCulled += record.SphereCulled
	r.BoxCulled += record.BoxCulled
	if record.Picked != "" {
		r.Picks[record.Picked]++
	}
	r.LastPicked = record.Picked
}

func (r *Report) Log() {
	core.LogInfo("simulated %d frames of %d objects in %s", r.Frames, r.Objects, r.Elapsed)
	core.LogInfo("visible per frame: min %d, avg %.2f, max %d", max(r.MinVisible, 0), r.AverageVisible, r.MaxVisible)
	core.LogInfo("culled: %d by bounding sphere, %d by bounding box", r.SphereCulled, r.BoxCulled)

	names := make([]string, 0, len(r.Picks))
	for name := range r.Picks {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		core.LogInfo("picked %s in %d frames", name, r.Picks[name])
	}
	if r.LastPicked == "" {
		core.LogInfo("nothing under the screen centre in the last frame")
	}
	core.LogInfo("frame time avg %.3fms (%.0f fps)", r.AverageFrameMS, r.FPS)
}
