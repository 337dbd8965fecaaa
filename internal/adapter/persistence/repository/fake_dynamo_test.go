package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo records the last input of each call and answers with canned
// outputs.
type fakeDynamo struct {
	getOut    *dynamodb.GetItemOutput
	updateOut *dynamodb.UpdateItemOutput
	deleteOut *dynamodb.DeleteItemOutput
	scanPages []*dynamodb.ScanOutput
	err       error

	lastPut    *dynamodb.PutItemInput
	lastUpdate *dynamodb.UpdateItemInput
	lastDelete *dynamodb.DeleteItemInput
	scanCalls  int
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	if f.err != nil {
		return nil, f.err
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.lastDelete = in
	if f.err != nil {
		return nil, f.err
	}
	if f.deleteOut == nil {
		return &dynamodb.DeleteItemOutput{}, nil
	}
	return f.deleteOut, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.scanCalls >= len(f.scanPages) {
		return nil, errors.New("unexpected scan")
	}
	page := f.scanPages[f.scanCalls]
	f.scanCalls++
	return page, nil
}
