package hwloc

import "github.com/numalab/hwloc-go/internal/bindings"

// BindFlag modifies CPU binding calls. Flags combine with bitwise or; the
// integer values are the native hwloc_cpubind_flags_t contract.
type BindFlag int

const (
	// BindProcess binds all threads of the current (or given) process.
	BindProcess BindFlag = 1 << iota
	// BindThread binds the current thread of the current process.
	BindThread
	// BindStrict requests the exact binding or failure, rather than the
	// OS's best effort.
	BindStrict
	// BindNoMemBind avoids any effect on memory binding.
	BindNoMemBind
)

// SetCPUBind binds the current process or thread to the PUs in set.
func (t *Topology) SetCPUBind(set *Bitmap, flags BindFlag) error {
	if t.closed {
		return &Error{Op: "SetCPUBind", Err: ErrTopologyClosed}
	}
	if set == nil || set.ptr == nil {
		return &Error{Op: "SetCPUBind", Err: ErrInvalidParameter}
	}
	if err := bindings.SetCPUBind(t.ptr, set.ptr, int(flags)); err != nil {
		return remapError("SetCPUBind", err)
	}
	return nil
}

// CPUBind returns the current binding of the current process or thread as
// a caller-owned bitmap.
func (t *Topology) CPUBind(flags BindFlag) (*Bitmap, error) {
	if t.closed {
		return nil, &Error{Op: "CPUBind", Err: ErrTopologyClosed}
	}
	set, err := NewBitmap()
	if err != nil {
		return nil, err
	}
	if err := bindings.GetCPUBind(t.ptr, set.ptr, int(flags)); err != nil {
		set.Close()
		return nil, remapError("CPUBind", err)
	}
	return set, nil
}

// LastCPULocation returns the PUs where the current process or thread
// last ran. The result may already be outdated when it returns.
func (t *Topology) LastCPULocation(flags BindFlag) (*Bitmap, error) {
	if t.closed {
		return nil, &Error{Op: "LastCPULocation", Err: ErrTopologyClosed}
	}
	set, err := NewBitmap()
	if err != nil {
		return nil, err
	}
	if err := bindings.GetLastCPULocation(t.ptr, set.ptr, int(flags)); err != nil {
		set.Close()
		return nil, remapError("LastCPULocation", err)
	}
	return set, nil
}

// SetProcCPUBind binds the process identified by pid to the PUs in set.
func (t *Topology) SetProcCPUBind(pid int, set *Bitmap, flags BindFlag) error {
	if t.closed {
		return &Error{Op: "SetProcCPUBind", Err: ErrTopologyClosed}
	}
	if set == nil || set.ptr == nil {
		return &Error{Op: "SetProcCPUBind", Err: ErrInvalidParameter}
	}
	if err := bindings.SetProcCPUBind(t.ptr, pid, set.ptr, int(flags)); err != nil {
		return remapError("SetProcCPUBind", err)
	}
	return nil
}

// ProcCPUBind returns the current binding of the process identified by
// pid.
func (t *Topology) ProcCPUBind(pid int, flags BindFlag) (*Bitmap, error) {
	if t.closed {
		return nil, &Error{Op: "ProcCPUBind", Err: ErrTopologyClosed}
	}
	set, err := NewBitmap()
	if err != nil {
		return nil, err
	}
	if err := bindings.GetProcCPUBind(t.ptr, pid, set.ptr, int(flags)); err != nil {
		set.Close()
		return nil, remapError("ProcCPUBind", err)
	}
	return set, nil
}

// ProcLastCPULocation returns the PUs where the process identified by pid
// last ran.
func (t *Topology) ProcLastCPULocation(pid int, flags BindFlag) (*Bitmap, error) {
	if t.closed {
		return nil, &Error{Op: "ProcLastCPULocation", Err: ErrTopologyClosed}
	}
	set, err := NewBitmap()
	if err != nil {
		return nil, err
	}
	if err := bindings.GetProcLastCPULocation(t.ptr, pid, set.ptr, int(flags)); err != nil {
		set.Close()
		return nil, remapError("ProcLastCPULocation", err)
	}
	return set, nil
}

// SetThreadCPUBind binds the thread identified by the native thread
// handle (pthread_t or HANDLE) to the PUs in set.
func (t *Topology) SetThreadCPUBind(thread uintptr, set *Bitmap, flags BindFlag) error {
	if t.closed {
		return &Error{Op: "SetThreadCPUBind", Err: ErrTopologyClosed}
	}
	if set == nil || set.ptr == nil {
		return &Error{Op: "SetThreadCPUBind", Err: ErrInvalidParameter}
	}
	if err := bindings.SetThreadCPUBind(t.ptr, thread, set.ptr, int(flags)); err != nil {
		return remapError("SetThreadCPUBind", err)
	}
	return nil
}

// ThreadCPUBind returns the current binding of the thread identified by
// the native thread handle.
func (t *Topology) ThreadCPUBind(thread uintptr, flags BindFlag) (*Bitmap, error) {
	if t.closed {
		return nil, &Error{Op: "ThreadCPUBind", Err: ErrTopologyClosed}
	}
	set, err := NewBitmap()
	if err != nil {
		return nil, err
	}
	if err := bindings.GetThreadCPUBind(t.ptr, thread, set.ptr, int(flags)); err != nil {
		set.Close()
		return nil, remapError("ThreadCPUBind", err)
	}
	return set, nil
}
