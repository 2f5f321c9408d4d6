package repository

import (
	"context"
	"errors"
	"time"

	"serving_u/internal/domain/entities"
	"serving_u/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAlterationsTableName = "alterations"

type alterationItem struct {
	ID       string            `dynamodbav:"id"`
	Customer orderCustomerItem `dynamodbav:"customer"`
	Note     string            `dynamodbav:"note"`
	Quantity int               `dynamodbav:"quantity"`

	Status     string  `dynamodbav:"status"`
	AdminTotal *string `dynamodbav:"adminTotal,omitempty"`

	PaymentStatus    string             `dynamodbav:"paymentStatus,omitempty"`
	Payment          *paymentRecordItem `dynamodbav:"payment,omitempty"`
	PaymentUpdatedAt string             `dynamodbav:"paymentUpdatedAt,omitempty"`

	CreatedAt string `dynamodbav:"timestamp"`
}

// AlterationDynamoRepository persists Alteration entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AlterationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAlterationRepository = (*AlterationDynamoRepository)(nil)

func NewAlterationDynamoRepository(ddb *dynamodb.Client) *AlterationDynamoRepository {
	return &AlterationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ALTERATIONS_TABLE", defaultAlterationsTableName),
	}
}

func (r *AlterationDynamoRepository) Create(ctx context.Context, a entities.Alteration) (entities.Alteration, error) {
	av, err := attributevalue.MarshalMap(toAlterationItem(a))
	if err != nil {
		return entities.Alteration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Alteration{}, err
	}
	return a, nil
}

func (r *AlterationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Alteration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Alteration{}, err
	}
	if len(out.Item) == 0 {
		return entities.Alteration{}, nil
	}

	var it alterationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Alteration{}, err
	}
	return fromAlterationItem(it), nil
}

func (r *AlterationDynamoRepository) List(ctx context.Context) ([]entities.Alteration, error) {
	var alterations []entities.Alteration
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []alterationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			alterations = append(alterations, fromAlterationItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return alterations, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *AlterationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AlterationStatus, payment *entities.PaymentUpdate) (entities.Alteration, error) {
	return r.update(ctx, id, func(_ string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": "status",
		}
		if payment != nil {
			expr += ", #payment_status = :payment_status, #payment_updated_at = :payment_updated_at"
			vals[":payment_status"] = &types.AttributeValueMemberS{Value: string(payment.Status)}
			vals[":payment_updated_at"] = &types.AttributeValueMemberS{Value: payment.UpdatedAt.UTC().Format(time.RFC3339Nano)}
			names["#payment_status"] = "paymentStatus"
			names["#payment_updated_at"] = "paymentUpdatedAt"
		}
		return expr, vals, names
	})
}

func (r *AlterationDynamoRepository) UpdatePayment(ctx context.Context, id string, p entities.PaymentUpdate) (entities.Alteration, error) {
	var recordAV types.AttributeValue
	if p.Record != (entities.PaymentRecord{}) {
		av, err := attributevalue.Marshal(paymentRecordItem(p.Record))
		if err != nil {
			return entities.Alteration{}, err
		}
		recordAV = av
	}

	return r.update(ctx, id, func(_ string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :payment_status, #payment_updated_at = :payment_updated_at"
		vals := map[string]types.AttributeValue{
			":payment_status":     &types.AttributeValueMemberS{Value: string(p.Status)},
			":payment_updated_at": &types.AttributeValueMemberS{Value: p.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		}
		names := map[string]string{
			"#payment_status":     "paymentStatus",
			"#payment_updated_at": "paymentUpdatedAt",
		}
		if recordAV != nil {
			expr += ", #payment_record = :payment_record"
			vals[":payment_record"] = recordAV
			names["#payment_record"] = "payment"
		}
		return expr, vals, names
	})
}

func (r *AlterationDynamoRepository) UpdateAdminTotal(ctx context.Context, id string, total float64) (entities.Alteration, error) {
	return r.update(ctx, id, func(_ string) (string, map[string]types.AttributeValue, map[string]string) {
		vals := map[string]types.AttributeValue{
			":total": &types.AttributeValueMemberS{Value: floatToString(total)},
		}
		names := map[string]string{"#total": "adminTotal"}
		return "SET #total = :total", vals, names
	})
}

func (r *AlterationDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Alteration, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Alteration{}, nil
		}
		return entities.Alteration{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Alteration{}, nil
	}
	var it alterationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Alteration{}, err
	}
	return fromAlterationItem(it), nil
}

func toAlterationItem(a entities.Alteration) alterationItem {
	it := alterationItem{
		ID:       a.ID,
		Customer: orderCustomerItem(a.Customer),
		Note:     a.Note,
		Quantity: a.Quantity,

		Status:     string(a.Status),
		AdminTotal: floatPtrToString(a.AdminTotal),

		PaymentStatus: string(a.PaymentStatus),

		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.Payment != (entities.PaymentRecord{}) {
		rec := paymentRecordItem(a.Payment)
		it.Payment = &rec
	}
	if a.PaymentUpdatedAt != nil {
		it.PaymentUpdatedAt = a.PaymentUpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromAlterationItem(it alterationItem) entities.Alteration {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	a := entities.Alteration{
		ID:       it.ID,
		Customer: entities.Customer(it.Customer),
		Note:     it.Note,
		Quantity: it.Quantity,

		Status:     entities.AlterationStatus(it.Status),
		AdminTotal: stringPtrToFloat(it.AdminTotal),

		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),

		CreatedAt: createdAt,
	}
	if it.Payment != nil {
		a.Payment = entities.PaymentRecord(*it.Payment)
	}
	if it.PaymentUpdatedAt != "" {
		ts, err := time.Parse(time.RFC3339Nano, it.PaymentUpdatedAt)
		if err == nil {
			a.PaymentUpdatedAt = &ts
		}
	}
	return a
}
