package repository

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// DynamoDB number attributes travel as strings; floats are formatted without
// trailing zeros so they round-trip exactly.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func floatPtrToString(v *float64) *string {
	if v == nil {
		return nil
	}
	s := floatToString(*v)
	return &s
}

func stringPtrToFloat(s *string) *float64 {
	if s == nil {
		return nil
	}
	v := stringToFloat(*s)
	return &v
}

// batchDeleteIDs removes items by id in BatchWriteItem chunks of 25, the
// DynamoDB per-request maximum. Unprocessed keys are retried until drained.
func batchDeleteIDs(ctx context.Context, ddb *dynamodb.Client, tableName string, ids []string) error {
	const batchMax = 25

	for start := 0; start < len(ids); start += batchMax {
		end := start + batchMax
		if end > len(ids) {
			end = len(ids)
		}

		writes := make([]types.WriteRequest, 0, end-start)
		for _, id := range ids[start:end] {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
				},
			})
		}

		pending := map[string][]types.WriteRequest{tableName: writes}
		for len(pending) > 0 {
			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func deleteByID(ctx context.Context, ddb *dynamodb.Client, tableName, id string) (bool, error) {
	out, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
