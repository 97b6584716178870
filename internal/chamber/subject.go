package chamber

import (
	"unsafe"
	"weak"
)

const TestChamberNumberProperty = "testChamberNumber"

// TestChambers publishes changes of the test chamber number to a single observer.
//
// The observer is referenced weakly: the subject never keeps it alive, and an
// observer collected by the GC is treated as detached. Zero-size observers
// share one address outside the heap and have no lifetime, they are held as is.
type TestChambers struct {
	observer          func() PropertyObserver
	testChamberNumber int
}

func NewTestChambers() *TestChambers {
	return &TestChambers{}
}

// Observe attaches the observer to the chambers, replacing the previous one.
// A nil observer detaches.
func Observe[T any, P interface {
	*T
	PropertyObserver
}](c *TestChambers, observer P) {
	if observer == nil {
		c.Detach()
		return
	}
	if unsafe.Sizeof(*new(T)) == 0 {
		c.observer = func() PropertyObserver {
			return observer
		}
		return
	}
	ref := weak.Make((*T)(observer))
	c.observer = func() PropertyObserver {
		if o := ref.Value(); o != nil {
			return P(o)
		}
		return nil
	}
}

func (c *TestChambers) Detach() {
	c.observer = nil
}

// Observed reports whether a live observer is attached
func (c *TestChambers) Observed() bool {
	return c.currentObserver() != nil
}

func (c *TestChambers) currentObserver() PropertyObserver {
	if c.observer == nil {
		return nil
	}
	return c.observer()
}

func (c *TestChambers) TestChamberNumber() int {
	return c.testChamberNumber
}

// SetTestChamberNumber stores the value. The observer gets WillChange with the
// new value before the store and DidChange with the old value after it.
func (c *TestChambers) SetTestChamberNumber(value int) {
	observer := c.currentObserver()
	if observer != nil {
		observer.WillChange(TestChamberNumberProperty, value)
	}

	old := c.testChamberNumber
	c.testChamberNumber = value

	if observer != nil {
		observer.DidChange(TestChamberNumberProperty, old)
	}
}

func (c *TestChambers) Increment() {
	c.SetTestChamberNumber(c.testChamberNumber + 1)
}
