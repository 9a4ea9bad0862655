package remote

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	agentpb "github.com/stockbuddy/stockbuddy/proto"
)

// GRPCAgentClient implements RemoteAgentClient over the agent gRPC protocol.
type GRPCAgentClient struct {
	conn   *grpc.ClientConn
	client agentpb.AgentServiceClient
}

// NewGRPCAgentClient connects to a remote agent at addr.
func NewGRPCAgentClient(addr string) (*GRPCAgentClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent at %s: %w", addr, err)
	}
	return &GRPCAgentClient{
		conn:   conn,
		client: agentpb.NewAgentServiceClient(conn),
	}, nil
}

// SendMessage opens the streaming call and returns a channel of events.
// Stream errors surface as a terminal failed status so the consumer sees
// one uniform shape.
func (c *GRPCAgentClient) SendMessage(ctx context.Context, query, conversationID string, meta *CallMetadata) (<-chan *Event, error) {
	req := &agentpb.SendMessageRequest{
		Query:          query,
		ConversationId: conversationID,
		Metadata:       toProtoMetadata(meta),
	}

	stream, err := c.client.SendMessage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gRPC SendMessage call failed: %w", err)
	}

	ch := make(chan *Event, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				failed := &Event{Status: &TaskStatusUpdate{
					State:   RemoteStateFailed,
					Message: err.Error(),
				}}
				select {
				case ch <- failed:
				case <-ctx.Done():
				}
				return
			}
			event := fromProtoEvent(resp)
			if event == nil {
				continue
			}
			select {
			case ch <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// GetCard fetches the agent's capability card.
func (c *GRPCAgentClient) GetCard(ctx context.Context) (*CapabilityCard, error) {
	resp, err := c.client.GetCard(ctx, &agentpb.GetCardRequest{})
	if err != nil {
		return nil, fmt.Errorf("gRPC GetCard call failed: %w", err)
	}
	card := &CapabilityCard{
		Name:        resp.Name,
		Description: resp.Description,
	}
	for _, s := range resp.Skills {
		card.Skills = append(card.Skills, CapabilitySkill{
			ID:          s.Id,
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return card, nil
}

// Cancel asks the agent to stop a remote task.
func (c *GRPCAgentClient) Cancel(ctx context.Context, remoteTaskID string) error {
	_, err := c.client.Cancel(ctx, &agentpb.CancelRequest{RemoteTaskId: remoteTaskID})
	if err != nil {
		return fmt.Errorf("gRPC Cancel call failed: %w", err)
	}
	return nil
}

// Close releases the gRPC connection.
func (c *GRPCAgentClient) Close() error {
	return c.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoMetadata(meta *CallMetadata) *agentpb.CallMetadata {
	if meta == nil {
		return nil
	}
	return &agentpb.CallMetadata{
		UserId:       meta.UserID,
		Language:     meta.Language,
		Timezone:     meta.Timezone,
		UserProfile:  meta.UserProfile,
		Dependencies: meta.Dependencies,
	}
}

func fromProtoEvent(resp *agentpb.AgentEvent) *Event {
	switch e := resp.Event.(type) {
	case *agentpb.AgentEvent_Status:
		status := &TaskStatusUpdate{
			RemoteTaskID: e.Status.RemoteTaskId,
			State:        fromProtoState(e.Status.State),
			Message:      e.Status.Message,
			Reasoning:    e.Status.Reasoning,
		}
		if tc := e.Status.ToolCall; tc != nil {
			status.ToolCall = &ToolCall{
				ID:        tc.Id,
				Name:      tc.Name,
				Arguments: tc.Arguments,
				Result:    tc.Result,
			}
		}
		return &Event{Status: status}
	case *agentpb.AgentEvent_Artifact:
		return &Event{Artifact: &TaskArtifactUpdate{
			RemoteTaskID: e.Artifact.RemoteTaskId,
			Name:         e.Artifact.Name,
			Content:      e.Artifact.Content,
		}}
	default:
		return nil
	}
}

func fromProtoState(s agentpb.TaskState) RemoteState {
	switch s {
	case agentpb.TaskState_TASK_STATE_SUBMITTED:
		return RemoteStateSubmitted
	case agentpb.TaskState_TASK_STATE_WORKING:
		return RemoteStateWorking
	case agentpb.TaskState_TASK_STATE_COMPLETED:
		return RemoteStateCompleted
	case agentpb.TaskState_TASK_STATE_FAILED:
		return RemoteStateFailed
	default:
		return RemoteStateWorking
	}
}
