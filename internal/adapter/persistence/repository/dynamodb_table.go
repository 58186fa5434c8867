package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

const (
	batchWriteLimit    = 25
	batchWriteAttempts = 5
)

// Items are stored with their json field names so the table matches the
// wire format exchanged with the field backend.
func useJSONTags(o *attributevalue.EncoderOptions) { o.TagKey = "json" }
func readJSONTags(o *attributevalue.DecoderOptions) { o.TagKey = "json" }

func marshalItem(v any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(v, useJSONTags)
}

func unmarshalItem(av map[string]types.AttributeValue, out any) error {
	return attributevalue.UnmarshalMapWithOptions(av, out, readJSONTags)
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// dynamoTable holds the generic get/put/scan/query plumbing for one table.
type dynamoTable[T any] struct {
	api  DynamoAPI
	name string
}

func (t dynamoTable[T]) get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	out, err := t.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, false, err
	}
	if len(out.Item) == 0 {
		return zero, false, nil
	}
	var v T
	if err := unmarshalItem(out.Item, &v); err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// put writes v. An optional condition is evaluated against the stored item.
func (t dynamoTable[T]) put(ctx context.Context, v T, cond string, names map[string]string, values map[string]types.AttributeValue) error {
	av, err := marshalItem(v)
	if err != nil {
		return err
	}
	in := &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	}
	if cond != "" {
		in.ConditionExpression = aws.String(cond)
		in.ExpressionAttributeNames = names
		if len(values) > 0 {
			in.ExpressionAttributeValues = values
		}
	}
	_, err = t.api.PutItem(ctx, in)
	return err
}

func (t dynamoTable[T]) create(ctx context.Context, v T) error {
	return t.put(ctx, v, "attribute_not_exists(#id)", map[string]string{"#id": "id"}, nil)
}

// replaceVersion writes v over an item still stored at version expected.
// Items written before versioning carry no version attribute and match 0.
func (t dynamoTable[T]) replaceVersion(ctx context.Context, v T, expected int64) error {
	if expected == 0 {
		return t.put(ctx, v, "attribute_exists(#id) AND attribute_not_exists(#version)",
			map[string]string{"#id": "id", "#version": "version"}, nil)
	}
	return t.put(ctx, v, "#version = :expected",
		map[string]string{"#version": "version"},
		map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	)
}

func (t dynamoTable[T]) decode(raw []map[string]types.AttributeValue, into []T) ([]T, error) {
	for _, item := range raw {
		var v T
		if err := unmarshalItem(item, &v); err != nil {
			return nil, err
		}
		into = append(into, v)
	}
	return into, nil
}

func (t dynamoTable[T]) scan(ctx context.Context) ([]T, error) {
	var out []T
	p := dynamodb.NewScanPaginator(t.api, &dynamodb.ScanInput{TableName: aws.String(t.name)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if out, err = t.decode(page.Items, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (t dynamoTable[T]) query(ctx context.Context, index, attr, value string) ([]T, error) {
	var out []T
	p := dynamodb.NewQueryPaginator(t.api, &dynamodb.QueryInput{
		TableName:                aws.String(t.name),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if out, err = t.decode(page.Items, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (t dynamoTable[T]) putBatch(ctx context.Context, items []T) error {
	for start := 0; start < len(items); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(items) {
			end = len(items)
		}
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, v := range items[start:end] {
			av, err := marshalItem(v)
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}
		pending := map[string][]types.WriteRequest{t.name: reqs}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt == batchWriteAttempts {
				return fmt.Errorf("batch write to %s: %d items unprocessed", t.name, len(pending[t.name]))
			}
			out, err := t.api.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func stringValues(kv ...string) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = &types.AttributeValueMemberS{Value: kv[i+1]}
	}
	return out
}

// Secondary indexes queried by the repositories, index name to hash attribute.
var (
	EstimateIndexes = map[string]string{estimatesCustomerIDIndex: "customerId"}
	PaymentIndexes  = map[string]string{paymentsEstimateIDIndex: "estimateId"}
	UsageLogIndexes = map[string]string{usageLogJobIDIndex: "jobId"}
)
