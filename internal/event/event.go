// internal/event/event.go
package event

import "go-spline-defense/internal/types"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	// Entity — сущность, о которой событие. NoEntity для событий сессии.
	Entity types.EntityID
	Data   interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Token — идентификатор подписки. Ноль никогда не выдаётся.
type Token uint64

type subscription struct {
	token    Token
	listener Listener
	entity   types.EntityID // NoEntity: все события этого типа
	active   bool
}

// Dispatcher — диспетчер событий. Подписки хранятся по токену, поэтому отписка
// не зависит от сравнения слушателей.
type Dispatcher struct {
	next      Token
	listeners map[EventType][]*subscription
	byToken   map[Token]EventType
	byEntity  map[types.EntityID][]Token
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]*subscription),
		byToken:   make(map[Token]EventType),
		byEntity:  make(map[types.EntityID][]Token),
	}
}

// Subscribe — подписка на все события типа
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Token {
	return d.add(eventType, types.NoEntity, listener)
}

// SubscribeEntity подписывает слушателя только на события о сущности entity.
// Подписка снимается через DropEntity при удалении сущности.
func (d *Dispatcher) SubscribeEntity(eventType EventType, entity types.EntityID, listener Listener) Token {
	tok := d.add(eventType, entity, listener)
	if !entity.IsNone() {
		d.byEntity[entity] = append(d.byEntity[entity], tok)
	}
	return tok
}

func (d *Dispatcher) add(eventType EventType, entity types.EntityID, listener Listener) Token {
	d.next++
	sub := &subscription{token: d.next, listener: listener, entity: entity, active: true}
	d.listeners[eventType] = append(d.listeners[eventType], sub)
	d.byToken[sub.token] = eventType
	return sub.token
}

// Unsubscribe — отписка по токену. Неизвестные токены игнорируются.
func (d *Dispatcher) Unsubscribe(tok Token) {
	eventType, ok := d.byToken[tok]
	if !ok {
		return
	}
	delete(d.byToken, tok)
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.token == tok {
			s.active = false
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
}

// DropEntity снимает все подписки, привязанные к сущности.
func (d *Dispatcher) DropEntity(entity types.EntityID) {
	for _, tok := range d.byEntity[entity] {
		d.Unsubscribe(tok)
	}
	delete(d.byEntity, entity)
}

// Len возвращает число активных подписок.
func (d *Dispatcher) Len() int {
	return len(d.byToken)
}

// Dispatch — отправка события подписчикам в порядке подписки. Слушатель,
// отписанный во время рассылки, больше не вызывается.
func (d *Dispatcher) Dispatch(event Event) {
	subs := d.listeners[event.Type]
	if len(subs) == 0 {
		return
	}
	snapshot := append([]*subscription(nil), subs...)
	for _, s := range snapshot {
		if !s.active {
			continue
		}
		if !s.entity.IsNone() && s.entity != event.Entity {
			continue
		}
		s.listener.OnEvent(event)
	}
}
