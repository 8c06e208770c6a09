package routingpool

type RoutingPool interface {
	Start() error
	Submit(Task) error
	Size() int
	Stop()
}
