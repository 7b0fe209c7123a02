/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package resultproto serializes a procedure's analysis summary to and
// from textproto, using a hand-built FileDescriptorProto and the
// runtime dynamicpb/protoreflect machinery rather than a protoc-
// generated .pb.go — the same pattern core/protoloader and
// demo/protoloader.go use to parse arbitrary textproto data against a
// descriptor set loaded at runtime, just with the descriptor
// constructed in code instead of read from a .pb file on disk.
package resultproto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/google/complexitron/analysis"
)

func strField(num int32, name string) *descriptorpb.FieldDescriptorProto {
	label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	typ := descriptorpb.FieldDescriptorProto_TYPE_STRING
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    &label,
		Type:     &typ,
		JsonName: proto.String(name),
	}
}

// procResultDescriptor is built once, with the seven fields exported
// from a ProcResult: a procedure's name, which solving method produced
// its bound ("iterative" or the recursive solver's Method), the
// worst/best-case asymptotic classes, the tight theta class and
// recurrence equation (recursive results only), and the prose
// explanation a learner reads alongside them.
var procResultDescriptor = &descriptorpb.FileDescriptorProto{
	Name:    proto.String("complexitron/proc_result.proto"),
	Package: proto.String("complexitron"),
	Syntax:  proto.String("proto3"),
	MessageType: []*descriptorpb.DescriptorProto{
		{
			Name: proto.String("ProcResult"),
			Field: []*descriptorpb.FieldDescriptorProto{
				strField(1, "name"),
				strField(2, "method"),
				strField(3, "big_o"),
				strField(4, "big_omega"),
				strField(5, "explanation"),
				strField(6, "theta"),
				strField(7, "recurrence_equation"),
			},
		},
	},
}

var procResultMessage protoreflect.MessageDescriptor

func init() {
	fd, err := protodesc.NewFile(procResultDescriptor, nil)
	if err != nil {
		panic(fmt.Sprintf("resultproto: building descriptor: %v", err))
	}
	procResultMessage = fd.Messages().Get(0)
}

// toDynamic builds a dynamicpb message from one ProcResult.
func toDynamic(p analysis.ProcResult) *dynamicpb.Message {
	msg := dynamicpb.NewMessage(procResultMessage)
	fields := procResultMessage.Fields()
	method := "iterative"
	bigO, bigOmega, explanation, theta, recurrenceEq := "", "", "", "", ""
	switch {
	case p.Recursive != nil:
		method = string(p.Recursive.Method)
		bigO = p.Recursive.BigO
		explanation = p.Recursive.Explanation
		theta = p.Recursive.Theta
		recurrenceEq = p.Recursive.RecurrenceEquation
		if p.Recursive.BestCase != nil {
			bigOmega = p.Recursive.BestCase.String()
		}
	case p.Iterative != nil:
		bigO = p.Iterative.BigO
		bigOmega = p.Iterative.BigOm
	}
	msg.Set(fields.ByName("name"), protoreflect.ValueOfString(p.Name))
	msg.Set(fields.ByName("method"), protoreflect.ValueOfString(method))
	msg.Set(fields.ByName("big_o"), protoreflect.ValueOfString(bigO))
	msg.Set(fields.ByName("big_omega"), protoreflect.ValueOfString(bigOmega))
	msg.Set(fields.ByName("explanation"), protoreflect.ValueOfString(explanation))
	msg.Set(fields.ByName("theta"), protoreflect.ValueOfString(theta))
	msg.Set(fields.ByName("recurrence_equation"), protoreflect.ValueOfString(recurrenceEq))
	return msg
}

// MarshalText renders a ProcResult as textproto.
func MarshalText(p analysis.ProcResult) (string, error) {
	out, err := prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(toDynamic(p))
	if err != nil {
		return "", fmt.Errorf("marshaling proc result: %w", err)
	}
	return string(out), nil
}

// Summary is the plain-Go projection UnmarshalText produces, read back
// out of the dynamic message's fields.
type Summary struct {
	Name               string
	Method             string
	BigO               string
	BigOmega           string
	Explanation        string
	Theta              string
	RecurrenceEquation string
}

// UnmarshalText parses textproto content back into a Summary.
func UnmarshalText(data []byte) (Summary, error) {
	msg := dynamicpb.NewMessage(procResultMessage)
	if err := prototext.Unmarshal(data, msg); err != nil {
		return Summary{}, fmt.Errorf("parsing proc result textproto: %w", err)
	}
	fields := procResultMessage.Fields()
	return Summary{
		Name:               msg.Get(fields.ByName("name")).String(),
		Method:             msg.Get(fields.ByName("method")).String(),
		BigO:               msg.Get(fields.ByName("big_o")).String(),
		BigOmega:           msg.Get(fields.ByName("big_omega")).String(),
		Explanation:        msg.Get(fields.ByName("explanation")).String(),
		Theta:              msg.Get(fields.ByName("theta")).String(),
		RecurrenceEquation: msg.Get(fields.ByName("recurrence_equation")).String(),
	}, nil
}
