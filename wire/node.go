// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wire contains the messages and gRPC service bindings of the node
// protocol. Messages are carried as CBOR using the "cbor" content-subtype.
package wire

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "iohk.chain.node.Node"

	Node_Tip_FullMethodName             = "/iohk.chain.node.Node/Tip"
	Node_PullBlocksToTip_FullMethodName = "/iohk.chain.node.Node/PullBlocksToTip"
)

// NodeClient is the client API for the Node service
type NodeClient interface {
	Tip(ctx context.Context, in *TipRequest, opts ...grpc.CallOption) (*TipResponse, error)
	PullBlocksToTip(ctx context.Context, in *PullBlocksToTipRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Block], error)
}

type nodeClient struct {
	cc grpc.ClientConnInterface
}

// NewNodeClient returns a NodeClient issuing calls over cc
func NewNodeClient(cc grpc.ClientConnInterface) NodeClient {
	return &nodeClient{cc}
}

func (c *nodeClient) Tip(ctx context.Context, in *TipRequest, opts ...grpc.CallOption) (*TipResponse, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(TipResponse)
	if err := c.cc.Invoke(ctx, Node_Tip_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nodeClient) PullBlocksToTip(ctx context.Context, in *PullBlocksToTipRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Block], error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &Node_ServiceDesc.Streams[0], Node_PullBlocksToTip_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[PullBlocksToTipRequest, Block]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// NodeServer is the server API for the Node service
type NodeServer interface {
	Tip(context.Context, *TipRequest) (*TipResponse, error)
	PullBlocksToTip(*PullBlocksToTipRequest, grpc.ServerStreamingServer[Block]) error
}

// UnimplementedNodeServer can be embedded to have forward compatible implementations
type UnimplementedNodeServer struct{}

func (UnimplementedNodeServer) Tip(context.Context, *TipRequest) (*TipResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Tip not implemented")
}

func (UnimplementedNodeServer) PullBlocksToTip(*PullBlocksToTipRequest, grpc.ServerStreamingServer[Block]) error {
	return status.Errorf(codes.Unimplemented, "method PullBlocksToTip not implemented")
}

// RegisterNodeServer registers srv with s
func RegisterNodeServer(s grpc.ServiceRegistrar, srv NodeServer) {
	s.RegisterService(&Node_ServiceDesc, srv)
}

func _Node_Tip_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NodeServer).Tip(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Node_Tip_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NodeServer).Tip(ctx, req.(*TipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Node_PullBlocksToTip_Handler(srv any, stream grpc.ServerStream) error {
	m := new(PullBlocksToTipRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(NodeServer).PullBlocksToTip(m, &grpc.GenericServerStream[PullBlocksToTipRequest, Block]{ServerStream: stream})
}

// Node_ServiceDesc is the grpc.ServiceDesc for the Node service
var Node_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NodeServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Tip",
			Handler:    _Node_Tip_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "PullBlocksToTip",
			Handler:       _Node_PullBlocksToTip_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "node.proto",
}
