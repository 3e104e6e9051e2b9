package discovery

import (
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/hashicorp/consul/api"
	"go.uber.org/zap"
)

type ConsulClient struct {
	client *api.Client
	log    *zap.SugaredLogger
}

type ServiceConfig struct {
	Name string
	ID   string
	Port int
	Tags []string
}

func NewConsulClient(host string, port int, log *zap.SugaredLogger) (*ConsulClient, error) {
	config := api.DefaultConfig()
	config.Address = fmt.Sprintf("%s:%d", host, port)

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Consul client: %w", err)
	}

	if _, err := client.Agent().Self(); err != nil {
		return nil, fmt.Errorf("failed to connect to Consul: %w", err)
	}

	return &ConsulClient{client: client, log: log}, nil
}

// getOutboundIP gets the preferred outbound IP of this machine.
func getOutboundIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String()
}

// Register registers a service instance with Consul, attaching an HTTP
// health check against /health. A missing ID gets a generated one so
// multiple instances of the same service can coexist.
func (c *ConsulClient) Register(cfg ServiceConfig) (string, error) {
	hostIP := getOutboundIP()

	if cfg.ID == "" {
		cfg.ID = fmt.Sprintf("%s-%s", cfg.Name, uuid.NewString())
	}

	registration := &api.AgentServiceRegistration{
		ID:      cfg.ID,
		Name:    cfg.Name,
		Port:    cfg.Port,
		Address: hostIP,
		Tags:    cfg.Tags,
		Check: &api.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", hostIP, cfg.Port),
			Interval:                       "10s",
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: "30s",
		},
	}

	if err := c.client.Agent().ServiceRegister(registration); err != nil {
		return "", fmt.Errorf("failed to register service: %w", err)
	}

	c.log.Infow("service registered", "name", cfg.Name, "id", cfg.ID, "address", hostIP, "port", cfg.Port)
	return cfg.ID, nil
}

// Deregister removes a service instance from Consul.
func (c *ConsulClient) Deregister(serviceID string) error {
	if err := c.client.Agent().ServiceDeregister(serviceID); err != nil {
		return fmt.Errorf("failed to deregister service: %w", err)
	}
	c.log.Infow("service deregistered", "id", serviceID)
	return nil
}

// GetService returns the address and port of a healthy instance.
func (c *ConsulClient) GetService(serviceName string) (string, int, error) {
	services, _, err := c.client.Health().Service(serviceName, "", true, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to get service: %w", err)
	}
	if len(services) == 0 {
		return "", 0, fmt.Errorf("no healthy instances of %s found", serviceName)
	}

	service := services[0].Service
	address := service.Address
	if address == "" {
		address = "localhost"
	}
	return address, service.Port, nil
}

// GetServiceURL returns the base URL of a healthy instance.
func (c *ConsulClient) GetServiceURL(serviceName string) (string, error) {
	address, port, err := c.GetService(serviceName)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://%s:%d", address, port), nil
}
