package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(WaveStarted, a)
	d.SubscribeAll(b, WaveStarted, BossSpawned)

	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: BossSpawned})
	d.Unsubscribe(WaveStarted, a)
	d.Dispatch(Event{Type: WaveStarted})

	if len(a.got) != 1 {
		t.Fatalf("a got %v, want one event", a.got)
	}
	if len(b.got) != 3 {
		t.Fatalf("b got %v, want three events", b.got)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var data interface{}
	f := ListenerFunc(func(e Event) { data = e.Data })
	d.Subscribe(PlayerDied, &f)
	d.Dispatch(Event{Type: PlayerDied, Data: DeathData{Wave: 3}})
	if dd, ok := data.(DeathData); !ok || dd.Wave != 3 {
		t.Fatalf("payload = %#v", data)
	}
}

func TestNilDispatcherDrops(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: WaveStarted})
}
