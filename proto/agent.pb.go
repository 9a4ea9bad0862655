// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: agent.proto

package agentpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type TaskState int32

const (
	TaskState_TASK_STATE_UNSPECIFIED TaskState = 0
	TaskState_TASK_STATE_SUBMITTED   TaskState = 1
	TaskState_TASK_STATE_WORKING     TaskState = 2
	TaskState_TASK_STATE_COMPLETED   TaskState = 3
	TaskState_TASK_STATE_FAILED      TaskState = 4
)

// Enum value maps for TaskState.
var (
	TaskState_name = map[int32]string{
		0: "TASK_STATE_UNSPECIFIED",
		1: "TASK_STATE_SUBMITTED",
		2: "TASK_STATE_WORKING",
		3: "TASK_STATE_COMPLETED",
		4: "TASK_STATE_FAILED",
	}
	TaskState_value = map[string]int32{
		"TASK_STATE_UNSPECIFIED": 0,
		"TASK_STATE_SUBMITTED":   1,
		"TASK_STATE_WORKING":     2,
		"TASK_STATE_COMPLETED":   3,
		"TASK_STATE_FAILED":      4,
	}
)

func (x TaskState) Enum() *TaskState {
	p := new(TaskState)
	*p = x
	return p
}

func (x TaskState) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (TaskState) Descriptor() protoreflect.EnumDescriptor {
	return file_agent_proto_enumTypes[0].Descriptor()
}

func (TaskState) Type() protoreflect.EnumType {
	return &file_agent_proto_enumTypes[0]
}

func (x TaskState) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use TaskState.Descriptor instead.
func (TaskState) EnumDescriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{0}
}

type SendMessageRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Query          string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	ConversationId string                 `protobuf:"bytes,2,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	Metadata       *CallMetadata          `protobuf:"bytes,3,opt,name=metadata,proto3" json:"metadata,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SendMessageRequest) Reset() {
	*x = SendMessageRequest{}
	mi := &file_agent_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageRequest) ProtoMessage() {}

func (x *SendMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageRequest.ProtoReflect.Descriptor instead.
func (*SendMessageRequest) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{0}
}

func (x *SendMessageRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SendMessageRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *SendMessageRequest) GetMetadata() *CallMetadata {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type CallMetadata struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	UserId      string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Language    string                 `protobuf:"bytes,2,opt,name=language,proto3" json:"language,omitempty"`
	Timezone    string                 `protobuf:"bytes,3,opt,name=timezone,proto3" json:"timezone,omitempty"`
	UserProfile string                 `protobuf:"bytes,4,opt,name=user_profile,json=userProfile,proto3" json:"user_profile,omitempty"`
	// Upstream task title -> produced text.
	Dependencies  map[string]string `protobuf:"bytes,5,rep,name=dependencies,proto3" json:"dependencies,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CallMetadata) Reset() {
	*x = CallMetadata{}
	mi := &file_agent_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CallMetadata) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CallMetadata) ProtoMessage() {}

func (x *CallMetadata) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CallMetadata.ProtoReflect.Descriptor instead.
func (*CallMetadata) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{1}
}

func (x *CallMetadata) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CallMetadata) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *CallMetadata) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

func (x *CallMetadata) GetUserProfile() string {
	if x != nil {
		return x.UserProfile
	}
	return ""
}

func (x *CallMetadata) GetDependencies() map[string]string {
	if x != nil {
		return x.Dependencies
	}
	return nil
}

type AgentEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*AgentEvent_Status
	//	*AgentEvent_Artifact
	Event         isAgentEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AgentEvent) Reset() {
	*x = AgentEvent{}
	mi := &file_agent_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentEvent) ProtoMessage() {}

func (x *AgentEvent) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AgentEvent.ProtoReflect.Descriptor instead.
func (*AgentEvent) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{2}
}

func (x *AgentEvent) GetEvent() isAgentEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *AgentEvent) GetStatus() *TaskStatusUpdate {
	if x != nil {
		if x, ok := x.Event.(*AgentEvent_Status); ok {
			return x.Status
		}
	}
	return nil
}

func (x *AgentEvent) GetArtifact() *TaskArtifactUpdate {
	if x != nil {
		if x, ok := x.Event.(*AgentEvent_Artifact); ok {
			return x.Artifact
		}
	}
	return nil
}

type isAgentEvent_Event interface {
	isAgentEvent_Event()
}

type AgentEvent_Status struct {
	Status *TaskStatusUpdate `protobuf:"bytes,1,opt,name=status,proto3,oneof"`
}

type AgentEvent_Artifact struct {
	Artifact *TaskArtifactUpdate `protobuf:"bytes,2,opt,name=artifact,proto3,oneof"`
}

func (*AgentEvent_Status) isAgentEvent_Event() {}

func (*AgentEvent_Artifact) isAgentEvent_Event() {}

type TaskStatusUpdate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RemoteTaskId  string                 `protobuf:"bytes,1,opt,name=remote_task_id,json=remoteTaskId,proto3" json:"remote_task_id,omitempty"`
	State         TaskState              `protobuf:"varint,2,opt,name=state,proto3,enum=stockbuddy.agent.v1.TaskState" json:"state,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Reasoning     string                 `protobuf:"bytes,4,opt,name=reasoning,proto3" json:"reasoning,omitempty"`
	ToolCall      *ToolCall              `protobuf:"bytes,5,opt,name=tool_call,json=toolCall,proto3" json:"tool_call,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskStatusUpdate) Reset() {
	*x = TaskStatusUpdate{}
	mi := &file_agent_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskStatusUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskStatusUpdate) ProtoMessage() {}

func (x *TaskStatusUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskStatusUpdate.ProtoReflect.Descriptor instead.
func (*TaskStatusUpdate) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{3}
}

func (x *TaskStatusUpdate) GetRemoteTaskId() string {
	if x != nil {
		return x.RemoteTaskId
	}
	return ""
}

func (x *TaskStatusUpdate) GetState() TaskState {
	if x != nil {
		return x.State
	}
	return TaskState_TASK_STATE_UNSPECIFIED
}

func (x *TaskStatusUpdate) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *TaskStatusUpdate) GetReasoning() string {
	if x != nil {
		return x.Reasoning
	}
	return ""
}

func (x *TaskStatusUpdate) GetToolCall() *ToolCall {
	if x != nil {
		return x.ToolCall
	}
	return nil
}

type ToolCall struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Arguments     string                 `protobuf:"bytes,3,opt,name=arguments,proto3" json:"arguments,omitempty"`
	Result        string                 `protobuf:"bytes,4,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolCall) Reset() {
	*x = ToolCall{}
	mi := &file_agent_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolCall) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolCall) ProtoMessage() {}

func (x *ToolCall) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolCall.ProtoReflect.Descriptor instead.
func (*ToolCall) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{4}
}

func (x *ToolCall) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ToolCall) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ToolCall) GetArguments() string {
	if x != nil {
		return x.Arguments
	}
	return ""
}

func (x *ToolCall) GetResult() string {
	if x != nil {
		return x.Result
	}
	return ""
}

type TaskArtifactUpdate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RemoteTaskId  string                 `protobuf:"bytes,1,opt,name=remote_task_id,json=remoteTaskId,proto3" json:"remote_task_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Content       string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskArtifactUpdate) Reset() {
	*x = TaskArtifactUpdate{}
	mi := &file_agent_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskArtifactUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskArtifactUpdate) ProtoMessage() {}

func (x *TaskArtifactUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskArtifactUpdate.ProtoReflect.Descriptor instead.
func (*TaskArtifactUpdate) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{5}
}

func (x *TaskArtifactUpdate) GetRemoteTaskId() string {
	if x != nil {
		return x.RemoteTaskId
	}
	return ""
}

func (x *TaskArtifactUpdate) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *TaskArtifactUpdate) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type GetCardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCardRequest) Reset() {
	*x = GetCardRequest{}
	mi := &file_agent_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCardRequest) ProtoMessage() {}

func (x *GetCardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCardRequest.ProtoReflect.Descriptor instead.
func (*GetCardRequest) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{6}
}

type CapabilityCard struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Skills        []*CapabilitySkill     `protobuf:"bytes,3,rep,name=skills,proto3" json:"skills,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CapabilityCard) Reset() {
	*x = CapabilityCard{}
	mi := &file_agent_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CapabilityCard) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CapabilityCard) ProtoMessage() {}

func (x *CapabilityCard) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CapabilityCard.ProtoReflect.Descriptor instead.
func (*CapabilityCard) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{7}
}

func (x *CapabilityCard) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CapabilityCard) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CapabilityCard) GetSkills() []*CapabilitySkill {
	if x != nil {
		return x.Skills
	}
	return nil
}

type CapabilitySkill struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CapabilitySkill) Reset() {
	*x = CapabilitySkill{}
	mi := &file_agent_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CapabilitySkill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CapabilitySkill) ProtoMessage() {}

func (x *CapabilitySkill) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CapabilitySkill.ProtoReflect.Descriptor instead.
func (*CapabilitySkill) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{8}
}

func (x *CapabilitySkill) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CapabilitySkill) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CapabilitySkill) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CancelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RemoteTaskId  string                 `protobuf:"bytes,1,opt,name=remote_task_id,json=remoteTaskId,proto3" json:"remote_task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelRequest) Reset() {
	*x = CancelRequest{}
	mi := &file_agent_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelRequest) ProtoMessage() {}

func (x *CancelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelRequest.ProtoReflect.Descriptor instead.
func (*CancelRequest) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{9}
}

func (x *CancelRequest) GetRemoteTaskId() string {
	if x != nil {
		return x.RemoteTaskId
	}
	return ""
}

type CancelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelResponse) Reset() {
	*x = CancelResponse{}
	mi := &file_agent_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelResponse) ProtoMessage() {}

func (x *CancelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelResponse.ProtoReflect.Descriptor instead.
func (*CancelResponse) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{10}
}

func (x *CancelResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

var File_agent_proto protoreflect.FileDescriptor

const file_agent_proto_rawDesc = "" +
	"\n" +
	"\vagent.proto\x12\x13stockbuddy.agent.v1\"\x92\x01\n" +
	"\x12SendMessageRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12'\n" +
	"\x0fconversation_id\x18\x02 \x01(\tR\x0econversationId\x12=\n" +
	"\bmetadata\x18\x03 \x01(\v2!.stockbuddy.agent.v1.CallMetadataR\bmetadata\"\x9c\x02\n" +
	"\fCallMetadata\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\blanguage\x18\x02 \x01(\tR\blanguage\x12\x1a\n" +
	"\btimezone\x18\x03 \x01(\tR\btimezone\x12!\n" +
	"\fuser_profile\x18\x04 \x01(\tR\vuserProfile\x12W\n" +
	"\fdependencies\x18\x05 \x03(\v23.stockbuddy.agent.v1.CallMetadata.DependenciesEntryR\fdependencies\x1a?\n" +
	"\x11DependenciesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x9d\x01\n" +
	"\n" +
	"AgentEvent\x12?\n" +
	"\x06status\x18\x01 \x01(\v2%.stockbuddy.agent.v1.TaskStatusUpdateH\x00R\x06status\x12E\n" +
	"\bartifact\x18\x02 \x01(\v2'.stockbuddy.agent.v1.TaskArtifactUpdateH\x00R\bartifactB\a\n" +
	"\x05event\"\xe2\x01\n" +
	"\x10TaskStatusUpdate\x12$\n" +
	"\x0eremote_task_id\x18\x01 \x01(\tR\fremoteTaskId\x124\n" +
	"\x05state\x18\x02 \x01(\x0e2\x1e.stockbuddy.agent.v1.TaskStateR\x05state\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x1c\n" +
	"\treasoning\x18\x04 \x01(\tR\treasoning\x12:\n" +
	"\ttool_call\x18\x05 \x01(\v2\x1d.stockbuddy.agent.v1.ToolCallR\btoolCall\"d\n" +
	"\bToolCall\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1c\n" +
	"\targuments\x18\x03 \x01(\tR\targuments\x12\x16\n" +
	"\x06result\x18\x04 \x01(\tR\x06result\"h\n" +
	"\x12TaskArtifactUpdate\x12$\n" +
	"\x0eremote_task_id\x18\x01 \x01(\tR\fremoteTaskId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\"\x10\n" +
	"\x0eGetCardRequest\"\x84\x01\n" +
	"\x0eCapabilityCard\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12<\n" +
	"\x06skills\x18\x03 \x03(\v2$.stockbuddy.agent.v1.CapabilitySkillR\x06skills\"W\n" +
	"\x0fCapabilitySkill\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"5\n" +
	"\rCancelRequest\x12$\n" +
	"\x0eremote_task_id\x18\x01 \x01(\tR\fremoteTaskId\"*\n" +
	"\x0eCancelResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess*\x8a\x01\n" +
	"\tTaskState\x12\x1a\n" +
	"\x16TASK_STATE_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14TASK_STATE_SUBMITTED\x10\x01\x12\x16\n" +
	"\x12TASK_STATE_WORKING\x10\x02\x12\x18\n" +
	"\x14TASK_STATE_COMPLETED\x10\x03\x12\x15\n" +
	"\x11TASK_STATE_FAILED\x10\x042\x91\x02\n" +
	"\fAgentService\x12Y\n" +
	"\vSendMessage\x12'.stockbuddy.agent.v1.SendMessageRequest\x1a\x1f.stockbuddy.agent.v1.AgentEvent0\x01\x12S\n" +
	"\aGetCard\x12#.stockbuddy.agent.v1.GetCardRequest\x1a#.stockbuddy.agent.v1.CapabilityCard\x12Q\n" +
	"\x06Cancel\x12\".stockbuddy.agent.v1.CancelRequest\x1a#.stockbuddy.agent.v1.CancelResponseB0Z.github.com/stockbuddy/stockbuddy/proto;agentpbb\x06proto3"

var (
	file_agent_proto_rawDescOnce sync.Once
	file_agent_proto_rawDescData []byte
)

func file_agent_proto_rawDescGZIP() []byte {
	file_agent_proto_rawDescOnce.Do(func() {
		file_agent_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_agent_proto_rawDesc), len(file_agent_proto_rawDesc)))
	})
	return file_agent_proto_rawDescData
}

var file_agent_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_agent_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_agent_proto_goTypes = []any{
	(TaskState)(0),             // 0: stockbuddy.agent.v1.TaskState
	(*SendMessageRequest)(nil), // 1: stockbuddy.agent.v1.SendMessageRequest
	(*CallMetadata)(nil),       // 2: stockbuddy.agent.v1.CallMetadata
	(*AgentEvent)(nil),         // 3: stockbuddy.agent.v1.AgentEvent
	(*TaskStatusUpdate)(nil),   // 4: stockbuddy.agent.v1.TaskStatusUpdate
	(*ToolCall)(nil),           // 5: stockbuddy.agent.v1.ToolCall
	(*TaskArtifactUpdate)(nil), // 6: stockbuddy.agent.v1.TaskArtifactUpdate
	(*GetCardRequest)(nil),     // 7: stockbuddy.agent.v1.GetCardRequest
	(*CapabilityCard)(nil),     // 8: stockbuddy.agent.v1.CapabilityCard
	(*CapabilitySkill)(nil),    // 9: stockbuddy.agent.v1.CapabilitySkill
	(*CancelRequest)(nil),      // 10: stockbuddy.agent.v1.CancelRequest
	(*CancelResponse)(nil),     // 11: stockbuddy.agent.v1.CancelResponse
	nil,                        // 12: stockbuddy.agent.v1.CallMetadata.DependenciesEntry
}
var file_agent_proto_depIdxs = []int32{
	2,  // 0: stockbuddy.agent.v1.SendMessageRequest.metadata:type_name -> stockbuddy.agent.v1.CallMetadata
	12, // 1: stockbuddy.agent.v1.CallMetadata.dependencies:type_name -> stockbuddy.agent.v1.CallMetadata.DependenciesEntry
	4,  // 2: stockbuddy.agent.v1.AgentEvent.status:type_name -> stockbuddy.agent.v1.TaskStatusUpdate
	6,  // 3: stockbuddy.agent.v1.AgentEvent.artifact:type_name -> stockbuddy.agent.v1.TaskArtifactUpdate
	0,  // 4: stockbuddy.agent.v1.TaskStatusUpdate.state:type_name -> stockbuddy.agent.v1.TaskState
	5,  // 5: stockbuddy.agent.v1.TaskStatusUpdate.tool_call:type_name -> stockbuddy.agent.v1.ToolCall
	9,  // 6: stockbuddy.agent.v1.CapabilityCard.skills:type_name -> stockbuddy.agent.v1.CapabilitySkill
	1,  // 7: stockbuddy.agent.v1.AgentService.SendMessage:input_type -> stockbuddy.agent.v1.SendMessageRequest
	7,  // 8: stockbuddy.agent.v1.AgentService.GetCard:input_type -> stockbuddy.agent.v1.GetCardRequest
	10, // 9: stockbuddy.agent.v1.AgentService.Cancel:input_type -> stockbuddy.agent.v1.CancelRequest
	3,  // 10: stockbuddy.agent.v1.AgentService.SendMessage:output_type -> stockbuddy.agent.v1.AgentEvent
	8,  // 11: stockbuddy.agent.v1.AgentService.GetCard:output_type -> stockbuddy.agent.v1.CapabilityCard
	11, // 12: stockbuddy.agent.v1.AgentService.Cancel:output_type -> stockbuddy.agent.v1.CancelResponse
	10, // [10:13] is the sub-list for method output_type
	7,  // [7:10] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_agent_proto_init() }
func file_agent_proto_init() {
	if File_agent_proto != nil {
		return
	}
	file_agent_proto_msgTypes[2].OneofWrappers = []any{
		(*AgentEvent_Status)(nil),
		(*AgentEvent_Artifact)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_agent_proto_rawDesc), len(file_agent_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_agent_proto_goTypes,
		DependencyIndexes: file_agent_proto_depIdxs,
		EnumInfos:         file_agent_proto_enumTypes,
		MessageInfos:      file_agent_proto_msgTypes,
	}.Build()
	File_agent_proto = out.File
	file_agent_proto_goTypes = nil
	file_agent_proto_depIdxs = nil
}
