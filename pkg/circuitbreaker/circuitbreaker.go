// Package circuitbreaker 为不稳定的外部依赖（如Redis分类缓存）提供熔断保护
//
// 状态转换：
//
//	CLOSED --连续失败达到阈值--> OPEN --超过OpenTimeout--> HALF_OPEN
//	HALF_OPEN --探测成功--> CLOSED
//	HALF_OPEN --探测失败--> OPEN
//
// 熔断打开期间Execute直接返回ErrOpenState，调用方应降级（例如跳过缓存直接查库）。
package circuitbreaker

import (
	"errors"
	"sync"
	"time"

	"github.com/xiebiao/modelstore/pkg/metrics"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开时返回
var ErrOpenState = errors.New("circuit breaker is open")

// Settings 熔断器参数
type Settings struct {
	// FailureThreshold 连续失败多少次后熔断，默认5
	FailureThreshold uint32
	// OpenTimeout OPEN状态持续时间，默认30s
	OpenTimeout time.Duration
	// HalfOpenRequests 半开状态允许通过的探测请求数，默认1
	HalfOpenRequests uint32
	// Window CLOSED状态下的统计窗口，过期后计数清零，默认60s
	Window time.Duration
}

func (s Settings) withDefaults() Settings {
	if s.FailureThreshold == 0 {
		s.FailureThreshold = 5
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = 30 * time.Second
	}
	if s.HalfOpenRequests == 0 {
		s.HalfOpenRequests = 1
	}
	if s.Window <= 0 {
		s.Window = 60 * time.Second
	}
	return s
}

// Counts 当前窗口内的统计
type Counts struct {
	Requests             uint32
	Successes            uint32
	Failures             uint32
	ConsecutiveFailures  uint32
	ConsecutiveSuccesses uint32
}

func (c *Counts) success() {
	c.Successes++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) failure() {
	c.Failures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

// Breaker 熔断器
type Breaker struct {
	name     string
	settings Settings
	now      func() time.Time

	mu         sync.Mutex
	state      State
	generation uint64 // 每次状态切换递增，用于丢弃过期的请求结果
	counts     Counts
	expiry     time.Time

	onStateChange func(name string, from, to State)
}

// New 创建熔断器
func New(name string, settings Settings) *Breaker {
	b := &Breaker{
		name:     name,
		settings: settings.withDefaults(),
		now:      time.Now,
		state:    StateClosed,
	}
	b.expiry = b.now().Add(b.settings.Window)
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(StateClosed))
	return b
}

// OnStateChange 注册状态变化回调（在持有锁时调用，回调内不要访问Breaker）
func (b *Breaker) OnStateChange(fn func(name string, from, to State)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onStateChange = fn
}

// Name 熔断器名称
func (b *Breaker) Name() string { return b.name }

// Execute 在熔断保护下执行fn
//
// fn返回的错误原样返回；熔断打开时不调用fn，返回ErrOpenState。
func (b *Breaker) Execute(fn func() error) error {
	generation, err := b.before()
	if err != nil {
		b.record("rejected")
		return err
	}

	err = fn()
	b.after(generation, err == nil)
	if err != nil {
		b.record("failure")
	} else {
		b.record("success")
	}
	return err
}

// State 当前状态
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	state, _ := b.current(b.now())
	return state
}

// Counts 当前统计快照
func (b *Breaker) Counts() Counts {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts
}

func (b *Breaker) before() (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, generation := b.current(b.now())
	switch {
	case state == StateOpen:
		return generation, ErrOpenState
	case state == StateHalfOpen && b.counts.Requests >= b.settings.HalfOpenRequests:
		return generation, ErrOpenState
	}

	b.counts.Requests++
	return generation, nil
}

func (b *Breaker) after(before uint64, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	state, generation := b.current(now)
	if generation != before {
		return
	}

	if ok {
		b.counts.success()
		if state == StateHalfOpen {
			b.setState(StateClosed, now)
		}
		return
	}

	b.counts.failure()
	switch state {
	case StateClosed:
		if b.counts.ConsecutiveFailures >= b.settings.FailureThreshold {
			b.setState(StateOpen, now)
		}
	case StateHalfOpen:
		b.setState(StateOpen, now)
	}
}

func (b *Breaker) current(now time.Time) (State, uint64) {
	switch b.state {
	case StateClosed:
		if b.expiry.Before(now) {
			b.counts = Counts{}
			b.expiry = now.Add(b.settings.Window)
		}
	case StateOpen:
		if b.expiry.Before(now) {
			b.setState(StateHalfOpen, now)
		}
	}
	return b.state, b.generation
}

func (b *Breaker) setState(state State, now time.Time) {
	if b.state == state {
		return
	}

	prev := b.state
	b.state = state
	b.generation++
	b.counts = Counts{}

	switch state {
	case StateClosed:
		b.expiry = now.Add(b.settings.Window)
	case StateOpen:
		b.expiry = now.Add(b.settings.OpenTimeout)
	case StateHalfOpen:
		b.expiry = time.Time{}
	}

	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": b.name}, float64(state))
	if b.onStateChange != nil {
		b.onStateChange(b.name, prev, state)
	}
}

func (b *Breaker) record(result string) {
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": b.name, "result": result})
}
