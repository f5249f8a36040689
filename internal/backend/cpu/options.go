package cpu

// DefaultGrowthScale and DefaultNumelThreshold are the work-width heuristic
// defaults used when no option overrides them.
const (
	DefaultGrowthScale    = 0.3
	DefaultNumelThreshold = 250000
)

type options struct {
	growthScale    float64
	numelThreshold int64
	sched          SchedPriority
	logger         *Logger
	numWorkers     uint32
}

func defaultOptions() *options {
	return &options{
		growthScale:    DefaultGrowthScale,
		numelThreshold: DefaultNumelThreshold,
		sched:          SchedPriorityNormal,
		logger:         NewLogger(nil),
	}
}

// Option configures a CPUDevice at construction time.
type Option func(*options)

// WithGrowthScale overrides the work-width heuristic's growth scale g.
func WithGrowthScale(g float64) Option {
	return func(o *options) { o.growthScale = g }
}

// WithNumelThreshold overrides the work-width heuristic's threshold T.
func WithNumelThreshold(t int64) Option {
	return func(o *options) { o.numelThreshold = t }
}

// WithSchedPriority sets the scheduling-priority hint stored on the pool.
// The hint has no effect on how workers are scheduled.
func WithSchedPriority(p SchedPriority) Option {
	return func(o *options) { o.sched = p }
}

// WithLogger overrides the device's logger. A nil logger argument installs
// a no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithNumWorkers sets the number of workers allocated to the pool when
// DeviceDescriptor.NumWorkers is zero; a non-zero descriptor value takes
// precedence. If both are zero, runtime.NumCPU() is used.
func WithNumWorkers(n uint32) Option {
	return func(o *options) { o.numWorkers = n }
}
