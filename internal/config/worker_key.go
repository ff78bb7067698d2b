package config

type WorkerKeyStruct struct {
	CounterEventsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	CounterEventsQueue: "counter_events_queue",
}
