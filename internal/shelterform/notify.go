package shelterform

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification es el toast que ve el usuario al terminar un submit.
type Notification struct {
	Title       string
	Variant     Variant
	Description string
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// ChanNotifier entrega las notificaciones por canal (p.ej. a un programa bubbletea).
// Si el buffer está lleno se descarta la más nueva.
type ChanNotifier chan Notification

func NewChanNotifier(size int) ChanNotifier {
	if size <= 0 {
		size = 1
	}
	return make(ChanNotifier, size)
}

func (c ChanNotifier) Notify(n Notification) {
	select {
	case c <- n:
	default:
	}
}
