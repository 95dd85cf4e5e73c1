package domain

// InboundMessage is one messaging event received from the WhatsApp gateway,
// either through the HTTP webhook or the AMQP listener.
type InboundMessage struct {
	MessageID    string `json:"messageId"`
	SessionID    string `json:"sessionId"`
	AgentID      string `json:"agentId"`
	PhoneNumber  string `json:"phoneNumber"`
	InstanceID   string `json:"instanceId"`
	InstanceName string `json:"instanceName"`
	ClientName   string `json:"clientName"`
	Text         string `json:"message"`
	Datetime     string `json:"datetime"`
}

// MessageBatch is the debounced payload relayed to the automation host once
// a conversation session has gone quiet.
type MessageBatch struct {
	Messages     []InboundMessage `json:"messages"`
	SessionID    string           `json:"sessionId"`
	AgentID      string           `json:"agentId"`
	PhoneNumber  string           `json:"phoneNumber"`
	InstanceID   string           `json:"instanceId"`
	InstanceName string           `json:"instanceName"`
	ClientName   string           `json:"clientName"`
	Datetime     string           `json:"datetime"`
}
