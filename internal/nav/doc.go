// Package nav implements a screen-stack navigation engine for terminal UIs.
//
// Core abstractions:
//   - Unit: one presentable screen with a lazily loaded view and an
//     appearance lifecycle
//   - Stack: the ordered container; push/pop/insert at arbitrary positions,
//     capacity-bounded view loading, lifecycle forwarding, transition
//     orchestration
//   - Controller: thin owning façade around exactly one Stack, with a
//     mandatory immovable root
//   - Delegate / ControllerDelegate: ordered state-change notifications
//   - Animator / Animation: the transition engine contract (see
//     internal/anim for the frame-based implementation)
//
// The engine is single-threaded by design: all mutation, lifecycle
// forwarding, and transition completion must happen on the goroutine that
// owns the UI loop. There is no internal locking.
package nav
