// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: storefront/v1/storefront.proto

package storefrontpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type OrderStatus int32

const (
	OrderStatus_ORDER_STATUS_UNSPECIFIED OrderStatus = 0
	OrderStatus_ORDER_STATUS_PENDING     OrderStatus = 1
	OrderStatus_ORDER_STATUS_DEPOSITED   OrderStatus = 2
	OrderStatus_ORDER_STATUS_COMPLETED   OrderStatus = 3
	OrderStatus_ORDER_STATUS_CANCELLED   OrderStatus = 4
)

// Enum value maps for OrderStatus.
var (
	OrderStatus_name = map[int32]string{
		0: "ORDER_STATUS_UNSPECIFIED",
		1: "ORDER_STATUS_PENDING",
		2: "ORDER_STATUS_DEPOSITED",
		3: "ORDER_STATUS_COMPLETED",
		4: "ORDER_STATUS_CANCELLED",
	}
	OrderStatus_value = map[string]int32{
		"ORDER_STATUS_UNSPECIFIED": 0,
		"ORDER_STATUS_PENDING":     1,
		"ORDER_STATUS_DEPOSITED":   2,
		"ORDER_STATUS_COMPLETED":   3,
		"ORDER_STATUS_CANCELLED":   4,
	}
)

func (x OrderStatus) Enum() *OrderStatus {
	p := new(OrderStatus)
	*p = x
	return p
}

func (x OrderStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (OrderStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_storefront_v1_storefront_proto_enumTypes[0].Descriptor()
}

func (OrderStatus) Type() protoreflect.EnumType {
	return &file_storefront_v1_storefront_proto_enumTypes[0]
}

func (x OrderStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use OrderStatus.Descriptor instead.
func (OrderStatus) EnumDescriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{0}
}

type ServiceOption struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Price         int64                  `protobuf:"varint,2,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServiceOption) Reset() {
	*x = ServiceOption{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServiceOption) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServiceOption) ProtoMessage() {}

func (x *ServiceOption) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServiceOption.ProtoReflect.Descriptor instead.
func (*ServiceOption) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{0}
}

func (x *ServiceOption) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ServiceOption) GetPrice() int64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type Service struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Price         int64                  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Options       []*ServiceOption       `protobuf:"bytes,5,rep,name=options,proto3" json:"options,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Service) Reset() {
	*x = Service{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Service) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Service) ProtoMessage() {}

func (x *Service) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Service.ProtoReflect.Descriptor instead.
func (*Service) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{1}
}

func (x *Service) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Service) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Service) GetPrice() int64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Service) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Service) GetOptions() []*ServiceOption {
	if x != nil {
		return x.Options
	}
	return nil
}

type Order struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Uid           string                 `protobuf:"bytes,2,opt,name=uid,proto3" json:"uid,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	Date          string                 `protobuf:"bytes,5,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD
	Time          string                 `protobuf:"bytes,6,opt,name=time,proto3" json:"time,omitempty"` // HH:MM
	Location      string                 `protobuf:"bytes,7,opt,name=location,proto3" json:"location,omitempty"`
	ServiceName   string                 `protobuf:"bytes,8,opt,name=service_name,json=serviceName,proto3" json:"service_name,omitempty"`
	Options       []*ServiceOption       `protobuf:"bytes,9,rep,name=options,proto3" json:"options,omitempty"`
	Total         int64                  `protobuf:"varint,10,opt,name=total,proto3" json:"total,omitempty"`
	Status        OrderStatus            `protobuf:"varint,11,opt,name=status,proto3,enum=storefront.v1.OrderStatus" json:"status,omitempty"`
	StatusLabel   string                 `protobuf:"bytes,12,opt,name=status_label,json=statusLabel,proto3" json:"status_label,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	DeliveryLink  string                 `protobuf:"bytes,14,opt,name=delivery_link,json=deliveryLink,proto3" json:"delivery_link,omitempty"`
	DeliveryPass  string                 `protobuf:"bytes,15,opt,name=delivery_pass,json=deliveryPass,proto3" json:"delivery_pass,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Order) Reset() {
	*x = Order{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Order) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Order) ProtoMessage() {}

func (x *Order) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Order.ProtoReflect.Descriptor instead.
func (*Order) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{2}
}

func (x *Order) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Order) GetUid() string {
	if x != nil {
		return x.Uid
	}
	return ""
}

func (x *Order) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Order) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Order) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *Order) GetTime() string {
	if x != nil {
		return x.Time
	}
	return ""
}

func (x *Order) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Order) GetServiceName() string {
	if x != nil {
		return x.ServiceName
	}
	return ""
}

func (x *Order) GetOptions() []*ServiceOption {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *Order) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *Order) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *Order) GetStatusLabel() string {
	if x != nil {
		return x.StatusLabel
	}
	return ""
}

func (x *Order) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Order) GetDeliveryLink() string {
	if x != nil {
		return x.DeliveryLink
	}
	return ""
}

func (x *Order) GetDeliveryPass() string {
	if x != nil {
		return x.DeliveryPass
	}
	return ""
}

type ListServicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          int32                  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListServicesRequest) Reset() {
	*x = ListServicesRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListServicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListServicesRequest) ProtoMessage() {}

func (x *ListServicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListServicesRequest.ProtoReflect.Descriptor instead.
func (*ListServicesRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{3}
}

func (x *ListServicesRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListServicesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListServicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Services      []*Service             `protobuf:"bytes,1,rep,name=services,proto3" json:"services,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListServicesResponse) Reset() {
	*x = ListServicesResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListServicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListServicesResponse) ProtoMessage() {}

func (x *ListServicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListServicesResponse.ProtoReflect.Descriptor instead.
func (*ListServicesResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{4}
}

func (x *ListServicesResponse) GetServices() []*Service {
	if x != nil {
		return x.Services
	}
	return nil
}

func (x *ListServicesResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type SaveServiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorUid      string                 `protobuf:"bytes,1,opt,name=actor_uid,json=actorUid,proto3" json:"actor_uid,omitempty"`
	Service       *Service               `protobuf:"bytes,2,opt,name=service,proto3" json:"service,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveServiceRequest) Reset() {
	*x = SaveServiceRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveServiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveServiceRequest) ProtoMessage() {}

func (x *SaveServiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveServiceRequest.ProtoReflect.Descriptor instead.
func (*SaveServiceRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{5}
}

func (x *SaveServiceRequest) GetActorUid() string {
	if x != nil {
		return x.ActorUid
	}
	return ""
}

func (x *SaveServiceRequest) GetService() *Service {
	if x != nil {
		return x.Service
	}
	return nil
}

type SaveServiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Service       *Service               `protobuf:"bytes,1,opt,name=service,proto3" json:"service,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveServiceResponse) Reset() {
	*x = SaveServiceResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveServiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveServiceResponse) ProtoMessage() {}

func (x *SaveServiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveServiceResponse.ProtoReflect.Descriptor instead.
func (*SaveServiceResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{6}
}

func (x *SaveServiceResponse) GetService() *Service {
	if x != nil {
		return x.Service
	}
	return nil
}

type DeleteServiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorUid      string                 `protobuf:"bytes,1,opt,name=actor_uid,json=actorUid,proto3" json:"actor_uid,omitempty"`
	Id            string                 `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteServiceRequest) Reset() {
	*x = DeleteServiceRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteServiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteServiceRequest) ProtoMessage() {}

func (x *DeleteServiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteServiceRequest.ProtoReflect.Descriptor instead.
func (*DeleteServiceRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteServiceRequest) GetActorUid() string {
	if x != nil {
		return x.ActorUid
	}
	return ""
}

func (x *DeleteServiceRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteServiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteServiceResponse) Reset() {
	*x = DeleteServiceResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteServiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteServiceResponse) ProtoMessage() {}

func (x *DeleteServiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteServiceResponse.ProtoReflect.Descriptor instead.
func (*DeleteServiceResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{8}
}

type SubmitBookingRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Uid       string                 `protobuf:"bytes,1,opt,name=uid,proto3" json:"uid,omitempty"`
	ServiceId string                 `protobuf:"bytes,2,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	// Names of the chosen add-ons; prices are taken from the catalog entry.
	OptionNames   []string `protobuf:"bytes,3,rep,name=option_names,json=optionNames,proto3" json:"option_names,omitempty"`
	Date          string   `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"`
	Time          string   `protobuf:"bytes,5,opt,name=time,proto3" json:"time,omitempty"`
	Location      string   `protobuf:"bytes,6,opt,name=location,proto3" json:"location,omitempty"`
	Phone         string   `protobuf:"bytes,7,opt,name=phone,proto3" json:"phone,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBookingRequest) Reset() {
	*x = SubmitBookingRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBookingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBookingRequest) ProtoMessage() {}

func (x *SubmitBookingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBookingRequest.ProtoReflect.Descriptor instead.
func (*SubmitBookingRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{9}
}

func (x *SubmitBookingRequest) GetUid() string {
	if x != nil {
		return x.Uid
	}
	return ""
}

func (x *SubmitBookingRequest) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *SubmitBookingRequest) GetOptionNames() []string {
	if x != nil {
		return x.OptionNames
	}
	return nil
}

func (x *SubmitBookingRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *SubmitBookingRequest) GetTime() string {
	if x != nil {
		return x.Time
	}
	return ""
}

func (x *SubmitBookingRequest) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *SubmitBookingRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

type SubmitBookingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBookingResponse) Reset() {
	*x = SubmitBookingResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBookingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBookingResponse) ProtoMessage() {}

func (x *SubmitBookingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBookingResponse.ProtoReflect.Descriptor instead.
func (*SubmitBookingResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{10}
}

func (x *SubmitBookingResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type ListOrdersRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	ActorUid string                 `protobuf:"bytes,1,opt,name=actor_uid,json=actorUid,proto3" json:"actor_uid,omitempty"`
	// Substring match over email, phone and location.
	Search        string      `protobuf:"bytes,2,opt,name=search,proto3" json:"search,omitempty"`
	Status        OrderStatus `protobuf:"varint,3,opt,name=status,proto3,enum=storefront.v1.OrderStatus" json:"status,omitempty"`
	Page          int32       `protobuf:"varint,4,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32       `protobuf:"varint,5,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersRequest) Reset() {
	*x = ListOrdersRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersRequest) ProtoMessage() {}

func (x *ListOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersRequest.ProtoReflect.Descriptor instead.
func (*ListOrdersRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{11}
}

func (x *ListOrdersRequest) GetActorUid() string {
	if x != nil {
		return x.ActorUid
	}
	return ""
}

func (x *ListOrdersRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

func (x *ListOrdersRequest) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *ListOrdersRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListOrdersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersResponse) Reset() {
	*x = ListOrdersResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersResponse) ProtoMessage() {}

func (x *ListOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersResponse.ProtoReflect.Descriptor instead.
func (*ListOrdersResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{12}
}

func (x *ListOrdersResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

func (x *ListOrdersResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type ListMyOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Uid           string                 `protobuf:"bytes,1,opt,name=uid,proto3" json:"uid,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyOrdersRequest) Reset() {
	*x = ListMyOrdersRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyOrdersRequest) ProtoMessage() {}

func (x *ListMyOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyOrdersRequest.ProtoReflect.Descriptor instead.
func (*ListMyOrdersRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{13}
}

func (x *ListMyOrdersRequest) GetUid() string {
	if x != nil {
		return x.Uid
	}
	return ""
}

func (x *ListMyOrdersRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListMyOrdersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListMyOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyOrdersResponse) Reset() {
	*x = ListMyOrdersResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyOrdersResponse) ProtoMessage() {}

func (x *ListMyOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyOrdersResponse.ProtoReflect.Descriptor instead.
func (*ListMyOrdersResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{14}
}

func (x *ListMyOrdersResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

func (x *ListMyOrdersResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type UpdateOrderStatusRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	ActorUid string                 `protobuf:"bytes,1,opt,name=actor_uid,json=actorUid,proto3" json:"actor_uid,omitempty"`
	OrderId  string                 `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Status   OrderStatus            `protobuf:"varint,3,opt,name=status,proto3,enum=storefront.v1.OrderStatus" json:"status,omitempty"`
	// Confirming DEPOSITED/COMPLETED on a slot another confirmed order
	// already holds fails with FAILED_PRECONDITION unless this is set.
	ConfirmConflict bool `protobuf:"varint,4,opt,name=confirm_conflict,json=confirmConflict,proto3" json:"confirm_conflict,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateOrderStatusRequest) Reset() {
	*x = UpdateOrderStatusRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateOrderStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateOrderStatusRequest) ProtoMessage() {}

func (x *UpdateOrderStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateOrderStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateOrderStatusRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{15}
}

func (x *UpdateOrderStatusRequest) GetActorUid() string {
	if x != nil {
		return x.ActorUid
	}
	return ""
}

func (x *UpdateOrderStatusRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *UpdateOrderStatusRequest) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *UpdateOrderStatusRequest) GetConfirmConflict() bool {
	if x != nil {
		return x.ConfirmConflict
	}
	return false
}

type UpdateOrderStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateOrderStatusResponse) Reset() {
	*x = UpdateOrderStatusResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateOrderStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateOrderStatusResponse) ProtoMessage() {}

func (x *UpdateOrderStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateOrderStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateOrderStatusResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{16}
}

func (x *UpdateOrderStatusResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type DeliverOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorUid      string                 `protobuf:"bytes,1,opt,name=actor_uid,json=actorUid,proto3" json:"actor_uid,omitempty"`
	OrderId       string                 `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	DeliveryLink  string                 `protobuf:"bytes,3,opt,name=delivery_link,json=deliveryLink,proto3" json:"delivery_link,omitempty"`
	DeliveryPass  string                 `protobuf:"bytes,4,opt,name=delivery_pass,json=deliveryPass,proto3" json:"delivery_pass,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeliverOrderRequest) Reset() {
	*x = DeliverOrderRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeliverOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeliverOrderRequest) ProtoMessage() {}

func (x *DeliverOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeliverOrderRequest.ProtoReflect.Descriptor instead.
func (*DeliverOrderRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{17}
}

func (x *DeliverOrderRequest) GetActorUid() string {
	if x != nil {
		return x.ActorUid
	}
	return ""
}

func (x *DeliverOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *DeliverOrderRequest) GetDeliveryLink() string {
	if x != nil {
		return x.DeliveryLink
	}
	return ""
}

func (x *DeliverOrderRequest) GetDeliveryPass() string {
	if x != nil {
		return x.DeliveryPass
	}
	return ""
}

type DeliverOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeliverOrderResponse) Reset() {
	*x = DeliverOrderResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeliverOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeliverOrderResponse) ProtoMessage() {}

func (x *DeliverOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeliverOrderResponse.ProtoReflect.Descriptor instead.
func (*DeliverOrderResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{18}
}

func (x *DeliverOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type GetScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorUid      string                 `protobuf:"bytes,1,opt,name=actor_uid,json=actorUid,proto3" json:"actor_uid,omitempty"`
	Date          string                 `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"`
	Page          int32                  `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScheduleRequest) Reset() {
	*x = GetScheduleRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScheduleRequest) ProtoMessage() {}

func (x *GetScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScheduleRequest.ProtoReflect.Descriptor instead.
func (*GetScheduleRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{19}
}

func (x *GetScheduleRequest) GetActorUid() string {
	if x != nil {
		return x.ActorUid
	}
	return ""
}

func (x *GetScheduleRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *GetScheduleRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *GetScheduleRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type GetScheduleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScheduleResponse) Reset() {
	*x = GetScheduleResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScheduleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScheduleResponse) ProtoMessage() {}

func (x *GetScheduleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScheduleResponse.ProtoReflect.Descriptor instead.
func (*GetScheduleResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{20}
}

func (x *GetScheduleResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

func (x *GetScheduleResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type GetDashboardStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorUid      string                 `protobuf:"bytes,1,opt,name=actor_uid,json=actorUid,proto3" json:"actor_uid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDashboardStatsRequest) Reset() {
	*x = GetDashboardStatsRequest{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDashboardStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDashboardStatsRequest) ProtoMessage() {}

func (x *GetDashboardStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDashboardStatsRequest.ProtoReflect.Descriptor instead.
func (*GetDashboardStatsRequest) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{21}
}

func (x *GetDashboardStatsRequest) GetActorUid() string {
	if x != nil {
		return x.ActorUid
	}
	return ""
}

type GetDashboardStatsResponse struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Total     int64                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Pending   int64                  `protobuf:"varint,2,opt,name=pending,proto3" json:"pending,omitempty"`
	Deposited int64                  `protobuf:"varint,3,opt,name=deposited,proto3" json:"deposited,omitempty"`
	Completed int64                  `protobuf:"varint,4,opt,name=completed,proto3" json:"completed,omitempty"`
	Cancelled int64                  `protobuf:"varint,5,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	// completed / (total - cancelled), percent.
	CompletionRate float64 `protobuf:"fixed64,6,opt,name=completion_rate,json=completionRate,proto3" json:"completion_rate,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetDashboardStatsResponse) Reset() {
	*x = GetDashboardStatsResponse{}
	mi := &file_storefront_v1_storefront_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDashboardStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDashboardStatsResponse) ProtoMessage() {}

func (x *GetDashboardStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_storefront_v1_storefront_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDashboardStatsResponse.ProtoReflect.Descriptor instead.
func (*GetDashboardStatsResponse) Descriptor() ([]byte, []int) {
	return file_storefront_v1_storefront_proto_rawDescGZIP(), []int{22}
}

func (x *GetDashboardStatsResponse) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetPending() int64 {
	if x != nil {
		return x.Pending
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetDeposited() int64 {
	if x != nil {
		return x.Deposited
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetCompleted() int64 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetCancelled() int64 {
	if x != nil {
		return x.Cancelled
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetCompletionRate() float64 {
	if x != nil {
		return x.CompletionRate
	}
	return 0
}

var File_storefront_v1_storefront_proto protoreflect.FileDescriptor

const file_storefront_v1_storefront_proto_rawDesc = "" +
	"\n" +
	"\x1estorefront/v1/storefront.proto\x12\rstorefront.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"9\n" +
	"\rServiceOption\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05price\x18\x02 \x01(\x03R\x05price\"\x9d\x01\n" +
	"\aService\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05price\x18\x03 \x01(\x03R\x05price\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x126\n" +
	"\aoptions\x18\x05 \x03(\v2\x1c.storefront.v1.ServiceOptionR\aoptions\"\xe6\x03\n" +
	"\x05Order\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03uid\x18\x02 \x01(\tR\x03uid\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x12\n" +
	"\x04date\x18\x05 \x01(\tR\x04date\x12\x12\n" +
	"\x04time\x18\x06 \x01(\tR\x04time\x12\x1a\n" +
	"\blocation\x18\a \x01(\tR\blocation\x12!\n" +
	"\fservice_name\x18\b \x01(\tR\vserviceName\x126\n" +
	"\aoptions\x18\t \x03(\v2\x1c.storefront.v1.ServiceOptionR\aoptions\x12\x14\n" +
	"\x05total\x18\n" +
	" \x01(\x03R\x05total\x122\n" +
	"\x06status\x18\v \x01(\x0e2\x1a.storefront.v1.OrderStatusR\x06status\x12!\n" +
	"\fstatus_label\x18\f \x01(\tR\vstatusLabel\x129\n" +
	"\n" +
	"created_at\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x12#\n" +
	"\rdelivery_link\x18\x0e \x01(\tR\fdeliveryLink\x12#\n" +
	"\rdelivery_pass\x18\x0f \x01(\tR\fdeliveryPass\"F\n" +
	"\x13ListServicesRequest\x12\x12\n" +
	"\x04page\x18\x01 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\"k\n" +
	"\x14ListServicesResponse\x122\n" +
	"\bservices\x18\x01 \x03(\v2\x16.storefront.v1.ServiceR\bservices\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"c\n" +
	"\x12SaveServiceRequest\x12\x1b\n" +
	"\tactor_uid\x18\x01 \x01(\tR\bactorUid\x120\n" +
	"\aservice\x18\x02 \x01(\v2\x16.storefront.v1.ServiceR\aservice\"G\n" +
	"\x13SaveServiceResponse\x120\n" +
	"\aservice\x18\x01 \x01(\v2\x16.storefront.v1.ServiceR\aservice\"C\n" +
	"\x14DeleteServiceRequest\x12\x1b\n" +
	"\tactor_uid\x18\x01 \x01(\tR\bactorUid\x12\x0e\n" +
	"\x02id\x18\x02 \x01(\tR\x02id\"\x17\n" +
	"\x15DeleteServiceResponse\"\xc4\x01\n" +
	"\x14SubmitBookingRequest\x12\x10\n" +
	"\x03uid\x18\x01 \x01(\tR\x03uid\x12\x1d\n" +
	"\n" +
	"service_id\x18\x02 \x01(\tR\tserviceId\x12!\n" +
	"\foption_names\x18\x03 \x03(\tR\voptionNames\x12\x12\n" +
	"\x04date\x18\x04 \x01(\tR\x04date\x12\x12\n" +
	"\x04time\x18\x05 \x01(\tR\x04time\x12\x1a\n" +
	"\blocation\x18\x06 \x01(\tR\blocation\x12\x14\n" +
	"\x05phone\x18\a \x01(\tR\x05phone\"C\n" +
	"\x15SubmitBookingResponse\x12*\n" +
	"\x05order\x18\x01 \x01(\v2\x14.storefront.v1.OrderR\x05order\"\xad\x01\n" +
	"\x11ListOrdersRequest\x12\x1b\n" +
	"\tactor_uid\x18\x01 \x01(\tR\bactorUid\x12\x16\n" +
	"\x06search\x18\x02 \x01(\tR\x06search\x122\n" +
	"\x06status\x18\x03 \x01(\x0e2\x1a.storefront.v1.OrderStatusR\x06status\x12\x12\n" +
	"\x04page\x18\x04 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x05 \x01(\x05R\bpageSize\"c\n" +
	"\x12ListOrdersResponse\x12,\n" +
	"\x06orders\x18\x01 \x03(\v2\x14.storefront.v1.OrderR\x06orders\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"X\n" +
	"\x13ListMyOrdersRequest\x12\x10\n" +
	"\x03uid\x18\x01 \x01(\tR\x03uid\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"e\n" +
	"\x14ListMyOrdersResponse\x12,\n" +
	"\x06orders\x18\x01 \x03(\v2\x14.storefront.v1.OrderR\x06orders\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"\xb1\x01\n" +
	"\x18UpdateOrderStatusRequest\x12\x1b\n" +
	"\tactor_uid\x18\x01 \x01(\tR\bactorUid\x12\x19\n" +
	"\border_id\x18\x02 \x01(\tR\aorderId\x122\n" +
	"\x06status\x18\x03 \x01(\x0e2\x1a.storefront.v1.OrderStatusR\x06status\x12)\n" +
	"\x10confirm_conflict\x18\x04 \x01(\bR\x0fconfirmConflict\"G\n" +
	"\x19UpdateOrderStatusResponse\x12*\n" +
	"\x05order\x18\x01 \x01(\v2\x14.storefront.v1.OrderR\x05order\"\x97\x01\n" +
	"\x13DeliverOrderRequest\x12\x1b\n" +
	"\tactor_uid\x18\x01 \x01(\tR\bactorUid\x12\x19\n" +
	"\border_id\x18\x02 \x01(\tR\aorderId\x12#\n" +
	"\rdelivery_link\x18\x03 \x01(\tR\fdeliveryLink\x12#\n" +
	"\rdelivery_pass\x18\x04 \x01(\tR\fdeliveryPass\"B\n" +
	"\x14DeliverOrderResponse\x12*\n" +
	"\x05order\x18\x01 \x01(\v2\x14.storefront.v1.OrderR\x05order\"v\n" +
	"\x12GetScheduleRequest\x12\x1b\n" +
	"\tactor_uid\x18\x01 \x01(\tR\bactorUid\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\x12\x12\n" +
	"\x04page\x18\x03 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x04 \x01(\x05R\bpageSize\"d\n" +
	"\x13GetScheduleResponse\x12,\n" +
	"\x06orders\x18\x01 \x03(\v2\x14.storefront.v1.OrderR\x06orders\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"7\n" +
	"\x18GetDashboardStatsRequest\x12\x1b\n" +
	"\tactor_uid\x18\x01 \x01(\tR\bactorUid\"\xce\x01\n" +
	"\x19GetDashboardStatsResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x03R\x05total\x12\x18\n" +
	"\apending\x18\x02 \x01(\x03R\apending\x12\x1c\n" +
	"\tdeposited\x18\x03 \x01(\x03R\tdeposited\x12\x1c\n" +
	"\tcompleted\x18\x04 \x01(\x03R\tcompleted\x12\x1c\n" +
	"\tcancelled\x18\x05 \x01(\x03R\tcancelled\x12'\n" +
	"\x0fcompletion_rate\x18\x06 \x01(\x01R\x0ecompletionRate*\x99\x01\n" +
	"\vOrderStatus\x12\x1c\n" +
	"\x18ORDER_STATUS_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14ORDER_STATUS_PENDING\x10\x01\x12\x1a\n" +
	"\x16ORDER_STATUS_DEPOSITED\x10\x02\x12\x1a\n" +
	"\x16ORDER_STATUS_COMPLETED\x10\x03\x12\x1a\n" +
	"\x16ORDER_STATUS_CANCELLED\x10\x042\x9b\x02\n" +
	"\x0eCatalogService\x12W\n" +
	"\fListServices\x12\".storefront.v1.ListServicesRequest\x1a#.storefront.v1.ListServicesResponse\x12T\n" +
	"\vSaveService\x12!.storefront.v1.SaveServiceRequest\x1a\".storefront.v1.SaveServiceResponse\x12Z\n" +
	"\rDeleteService\x12#.storefront.v1.DeleteServiceRequest\x1a$.storefront.v1.DeleteServiceResponse2\x95\x05\n" +
	"\fOrderService\x12Z\n" +
	"\rSubmitBooking\x12#.storefront.v1.SubmitBookingRequest\x1a$.storefront.v1.SubmitBookingResponse\x12Q\n" +
	"\n" +
	"ListOrders\x12 .storefront.v1.ListOrdersRequest\x1a!.storefront.v1.ListOrdersResponse\x12W\n" +
	"\fListMyOrders\x12\".storefront.v1.ListMyOrdersRequest\x1a#.storefront.v1.ListMyOrdersResponse\x12f\n" +
	"\x11UpdateOrderStatus\x12'.storefront.v1.UpdateOrderStatusRequest\x1a(.storefront.v1.UpdateOrderStatusResponse\x12W\n" +
	"\fDeliverOrder\x12\".storefront.v1.DeliverOrderRequest\x1a#.storefront.v1.DeliverOrderResponse\x12T\n" +
	"\vGetSchedule\x12!.storefront.v1.GetScheduleRequest\x1a\".storefront.v1.GetScheduleResponse\x12f\n" +
	"\x11GetDashboardStats\x12'.storefront.v1.GetDashboardStatsRequest\x1a(.storefront.v1.GetDashboardStatsResponseBNZLgithub.com/luxstudio/storefront-core/internal/api/storefront/v1;storefrontpbb\x06proto3"

var (
	file_storefront_v1_storefront_proto_rawDescOnce sync.Once
	file_storefront_v1_storefront_proto_rawDescData []byte
)

func file_storefront_v1_storefront_proto_rawDescGZIP() []byte {
	file_storefront_v1_storefront_proto_rawDescOnce.Do(func() {
		file_storefront_v1_storefront_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_storefront_v1_storefront_proto_rawDesc), len(file_storefront_v1_storefront_proto_rawDesc)))
	})
	return file_storefront_v1_storefront_proto_rawDescData
}

var file_storefront_v1_storefront_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_storefront_v1_storefront_proto_msgTypes = make([]protoimpl.MessageInfo, 23)
var file_storefront_v1_storefront_proto_goTypes = []any{
	(OrderStatus)(0),                  // 0: storefront.v1.OrderStatus
	(*ServiceOption)(nil),             // 1: storefront.v1.ServiceOption
	(*Service)(nil),                   // 2: storefront.v1.Service
	(*Order)(nil),                     // 3: storefront.v1.Order
	(*ListServicesRequest)(nil),       // 4: storefront.v1.ListServicesRequest
	(*ListServicesResponse)(nil),      // 5: storefront.v1.ListServicesResponse
	(*SaveServiceRequest)(nil),        // 6: storefront.v1.SaveServiceRequest
	(*SaveServiceResponse)(nil),       // 7: storefront.v1.SaveServiceResponse
	(*DeleteServiceRequest)(nil),      // 8: storefront.v1.DeleteServiceRequest
	(*DeleteServiceResponse)(nil),     // 9: storefront.v1.DeleteServiceResponse
	(*SubmitBookingRequest)(nil),      // 10: storefront.v1.SubmitBookingRequest
	(*SubmitBookingResponse)(nil),     // 11: storefront.v1.SubmitBookingResponse
	(*ListOrdersRequest)(nil),         // 12: storefront.v1.ListOrdersRequest
	(*ListOrdersResponse)(nil),        // 13: storefront.v1.ListOrdersResponse
	(*ListMyOrdersRequest)(nil),       // 14: storefront.v1.ListMyOrdersRequest
	(*ListMyOrdersResponse)(nil),      // 15: storefront.v1.ListMyOrdersResponse
	(*UpdateOrderStatusRequest)(nil),  // 16: storefront.v1.UpdateOrderStatusRequest
	(*UpdateOrderStatusResponse)(nil), // 17: storefront.v1.UpdateOrderStatusResponse
	(*DeliverOrderRequest)(nil),       // 18: storefront.v1.DeliverOrderRequest
	(*DeliverOrderResponse)(nil),      // 19: storefront.v1.DeliverOrderResponse
	(*GetScheduleRequest)(nil),        // 20: storefront.v1.GetScheduleRequest
	(*GetScheduleResponse)(nil),       // 21: storefront.v1.GetScheduleResponse
	(*GetDashboardStatsRequest)(nil),  // 22: storefront.v1.GetDashboardStatsRequest
	(*GetDashboardStatsResponse)(nil), // 23: storefront.v1.GetDashboardStatsResponse
	(*timestamppb.Timestamp)(nil),     // 24: google.protobuf.Timestamp
}
var file_storefront_v1_storefront_proto_depIdxs = []int32{
	1,  // 0: storefront.v1.Service.options:type_name -> storefront.v1.ServiceOption
	1,  // 1: storefront.v1.Order.options:type_name -> storefront.v1.ServiceOption
	0,  // 2: storefront.v1.Order.status:type_name -> storefront.v1.OrderStatus
	24, // 3: storefront.v1.Order.created_at:type_name -> google.protobuf.Timestamp
	2,  // 4: storefront.v1.ListServicesResponse.services:type_name -> storefront.v1.Service
	2,  // 5: storefront.v1.SaveServiceRequest.service:type_name -> storefront.v1.Service
	2,  // 6: storefront.v1.SaveServiceResponse.service:type_name -> storefront.v1.Service
	3,  // 7: storefront.v1.SubmitBookingResponse.order:type_name -> storefront.v1.Order
	0,  // 8: storefront.v1.ListOrdersRequest.status:type_name -> storefront.v1.OrderStatus
	3,  // 9: storefront.v1.ListOrdersResponse.orders:type_name -> storefront.v1.Order
	3,  // 10: storefront.v1.ListMyOrdersResponse.orders:type_name -> storefront.v1.Order
	0,  // 11: storefront.v1.UpdateOrderStatusRequest.status:type_name -> storefront.v1.OrderStatus
	3,  // 12: storefront.v1.UpdateOrderStatusResponse.order:type_name -> storefront.v1.Order
	3,  // 13: storefront.v1.DeliverOrderResponse.order:type_name -> storefront.v1.Order
	3,  // 14: storefront.v1.GetScheduleResponse.orders:type_name -> storefront.v1.Order
	4,  // 15: storefront.v1.CatalogService.ListServices:input_type -> storefront.v1.ListServicesRequest
	6,  // 16: storefront.v1.CatalogService.SaveService:input_type -> storefront.v1.SaveServiceRequest
	8,  // 17: storefront.v1.CatalogService.DeleteService:input_type -> storefront.v1.DeleteServiceRequest
	10, // 18: storefront.v1.OrderService.SubmitBooking:input_type -> storefront.v1.SubmitBookingRequest
	12, // 19: storefront.v1.OrderService.ListOrders:input_type -> storefront.v1.ListOrdersRequest
	14, // 20: storefront.v1.OrderService.ListMyOrders:input_type -> storefront.v1.ListMyOrdersRequest
	16, // 21: storefront.v1.OrderService.UpdateOrderStatus:input_type -> storefront.v1.UpdateOrderStatusRequest
	18, // 22: storefront.v1.OrderService.DeliverOrder:input_type -> storefront.v1.DeliverOrderRequest
	20, // 23: storefront.v1.OrderService.GetSchedule:input_type -> storefront.v1.GetScheduleRequest
	22, // 24: storefront.v1.OrderService.GetDashboardStats:input_type -> storefront.v1.GetDashboardStatsRequest
	5,  // 25: storefront.v1.CatalogService.ListServices:output_type -> storefront.v1.ListServicesResponse
	7,  // 26: storefront.v1.CatalogService.SaveService:output_type -> storefront.v1.SaveServiceResponse
	9,  // 27: storefront.v1.CatalogService.DeleteService:output_type -> storefront.v1.DeleteServiceResponse
	11, // 28: storefront.v1.OrderService.SubmitBooking:output_type -> storefront.v1.SubmitBookingResponse
	13, // 29: storefront.v1.OrderService.ListOrders:output_type -> storefront.v1.ListOrdersResponse
	15, // 30: storefront.v1.OrderService.ListMyOrders:output_type -> storefront.v1.ListMyOrdersResponse
	17, // 31: storefront.v1.OrderService.UpdateOrderStatus:output_type -> storefront.v1.UpdateOrderStatusResponse
	19, // 32: storefront.v1.OrderService.DeliverOrder:output_type -> storefront.v1.DeliverOrderResponse
	21, // 33: storefront.v1.OrderService.GetSchedule:output_type -> storefront.v1.GetScheduleResponse
	23, // 34: storefront.v1.OrderService.GetDashboardStats:output_type -> storefront.v1.GetDashboardStatsResponse
	25, // [25:35] is the sub-list for method output_type
	15, // [15:25] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_storefront_v1_storefront_proto_init() }
func file_storefront_v1_storefront_proto_init() {
	if File_storefront_v1_storefront_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_storefront_v1_storefront_proto_rawDesc), len(file_storefront_v1_storefront_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   23,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_storefront_v1_storefront_proto_goTypes,
		DependencyIndexes: file_storefront_v1_storefront_proto_depIdxs,
		EnumInfos:         file_storefront_v1_storefront_proto_enumTypes,
		MessageInfos:      file_storefront_v1_storefront_proto_msgTypes,
	}.Build()
	File_storefront_v1_storefront_proto = out.File
	file_storefront_v1_storefront_proto_goTypes = nil
	file_storefront_v1_storefront_proto_depIdxs = nil
}
