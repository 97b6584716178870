package chamber

// PropertyObserver is notified around every change of an observed property
type PropertyObserver interface {
	WillChange(property string, newValue int)
	DidChange(property string, oldValue int)
}
