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

const defaultOrdersTableName = "orders"

type orderCustomerItem struct {
	Name    string `dynamodbav:"name"`
	Address string `dynamodbav:"address"`
	Phone   string `dynamodbav:"phone"`
	Email   string `dynamodbav:"email"`
}

type orderLineItem struct {
	ItemID      string `dynamodbav:"itemId,omitempty"`
	Name        string `dynamodbav:"name"`
	Price       string `dynamodbav:"price"`
	Quantity    int    `dynamodbav:"quantity"`
	Category    string `dynamodbav:"category,omitempty"`
	Size        string `dynamodbav:"size,omitempty"`
	LaundryType string `dynamodbav:"laundryType,omitempty"`
}

type paymentRecordItem struct {
	PaymentID      string `dynamodbav:"paymentId,omitempty"`
	GatewayOrderID string `dynamodbav:"razorpayOrderId,omitempty"`
	Signature      string `dynamodbav:"razorpaySignature,omitempty"`
}

type orderItem struct {
	ID       string            `dynamodbav:"id"`
	Sequence int64             `dynamodbav:"sequence"`
	Customer orderCustomerItem `dynamodbav:"customer"`
	Items    []orderLineItem   `dynamodbav:"items"`

	Total      string  `dynamodbav:"total"`
	AdminTotal *string `dynamodbav:"adminTotal,omitempty"`
	Note       string  `dynamodbav:"note,omitempty"`

	LaundryStatus   string `dynamodbav:"laundryStatus,omitempty"`
	ReadymadeStatus string `dynamodbav:"readymadeStatus,omitempty"`

	LaundryPaymentStatus   string `dynamodbav:"laundryPaymentStatus,omitempty"`
	ReadymadePaymentStatus string `dynamodbav:"readymadePaymentStatus,omitempty"`

	LaundryAdminTotal *string `dynamodbav:"laundryAdminTotal,omitempty"`
	ReadymadeTotal    string  `dynamodbav:"readymadeTotal"`

	LaundryPayment   *paymentRecordItem `dynamodbav:"laundryPayment,omitempty"`
	ReadymadePayment *paymentRecordItem `dynamodbav:"readymadePayment,omitempty"`

	PaymentUpdatedAt string `dynamodbav:"paymentUpdatedAt,omitempty"`
	CreatedAt        string `dynamodbav:"timestamp"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The split laundry/readymade attributes are the stored truth; the legacy
// combined status fields are computed by the entity and never written.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromOrderItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) UpdateGroupStatus(ctx context.Context, id string, group entities.ItemGroup, status entities.OrderStatus) (entities.Order, error) {
	attr := groupAttr(group, "Status")
	return r.update(ctx, id, func(_ string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": attr,
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateGroupPayment(ctx context.Context, id string, group entities.ItemGroup, p entities.PaymentUpdate) (entities.Order, error) {
	statusAttr := groupAttr(group, "PaymentStatus")
	recordAttr := groupAttr(group, "Payment")

	var recordAV types.AttributeValue
	if p.Record != (entities.PaymentRecord{}) {
		av, err := attributevalue.Marshal(paymentRecordItem(p.Record))
		if err != nil {
			return entities.Order{}, err
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
			"#payment_status":     statusAttr,
			"#payment_updated_at": "paymentUpdatedAt",
		}
		if recordAV != nil {
			expr += ", #payment_record = :payment_record"
			vals[":payment_record"] = recordAV
			names["#payment_record"] = recordAttr
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateAdminTotal(ctx context.Context, id string, total *float64) (entities.Order, error) {
	return r.updateTotalAttr(ctx, id, "adminTotal", total)
}

func (r *OrderDynamoRepository) UpdateLaundryAdminTotal(ctx context.Context, id string, total *float64) (entities.Order, error) {
	return r.updateTotalAttr(ctx, id, "laundryAdminTotal", total)
}

func (r *OrderDynamoRepository) updateTotalAttr(ctx context.Context, id, attr string, total *float64) (entities.Order, error) {
	return r.update(ctx, id, func(_ string) (string, map[string]types.AttributeValue, map[string]string) {
		names := map[string]string{"#total": attr}
		if total == nil {
			return "REMOVE #total", nil, names
		}
		vals := map[string]types.AttributeValue{
			":total": &types.AttributeValueMemberS{Value: floatToString(*total)},
		}
		return "SET #total = :total", vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func groupAttr(group entities.ItemGroup, suffix string) string {
	if group == entities.GroupLaundry {
		return "laundry" + suffix
	}
	return "readymade" + suffix
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]orderLineItem, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, orderLineItem{
			ItemID:      li.ItemID,
			Name:        li.Name,
			Price:       floatToString(li.Price),
			Quantity:    li.Quantity,
			Category:    li.Category,
			Size:        li.Size,
			LaundryType: li.LaundryType,
		})
	}

	it := orderItem{
		ID:       o.ID,
		Sequence: o.Sequence,
		Customer: orderCustomerItem(o.Customer),
		Items:    items,

		Total:      floatToString(o.Total),
		AdminTotal: floatPtrToString(o.AdminTotal),
		Note:       o.Note,

		LaundryStatus:   string(o.LaundryStatus),
		ReadymadeStatus: string(o.ReadymadeStatus),

		LaundryPaymentStatus:   string(o.LaundryPaymentStatus),
		ReadymadePaymentStatus: string(o.ReadymadePaymentStatus),

		LaundryAdminTotal: floatPtrToString(o.LaundryAdminTotal),
		ReadymadeTotal:    floatToString(o.ReadymadeTotal),

		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.LaundryPayment != (entities.PaymentRecord{}) {
		rec := paymentRecordItem(o.LaundryPayment)
		it.LaundryPayment = &rec
	}
	if o.ReadymadePayment != (entities.PaymentRecord{}) {
		rec := paymentRecordItem(o.ReadymadePayment)
		it.ReadymadePayment = &rec
	}
	if o.PaymentUpdatedAt != nil {
		it.PaymentUpdatedAt = o.PaymentUpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.OrderItem{
			ItemID:      li.ItemID,
			Name:        li.Name,
			Price:       stringToFloat(li.Price),
			Quantity:    li.Quantity,
			Category:    li.Category,
			Size:        li.Size,
			LaundryType: li.LaundryType,
		})
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	o := entities.Order{
		ID:       it.ID,
		Sequence: it.Sequence,
		Customer: entities.Customer(it.Customer),
		Items:    items,

		Total:      stringToFloat(it.Total),
		AdminTotal: stringPtrToFloat(it.AdminTotal),
		Note:       it.Note,

		LaundryStatus:   entities.OrderStatus(it.LaundryStatus),
		ReadymadeStatus: entities.OrderStatus(it.ReadymadeStatus),

		LaundryPaymentStatus:   entities.PaymentStatus(it.LaundryPaymentStatus),
		ReadymadePaymentStatus: entities.PaymentStatus(it.ReadymadePaymentStatus),

		LaundryAdminTotal: stringPtrToFloat(it.LaundryAdminTotal),
		ReadymadeTotal:    stringToFloat(it.ReadymadeTotal),

		CreatedAt: createdAt,
	}
	if it.LaundryPayment != nil {
		o.LaundryPayment = entities.PaymentRecord(*it.LaundryPayment)
	}
	if it.ReadymadePayment != nil {
		o.ReadymadePayment = entities.PaymentRecord(*it.ReadymadePayment)
	}
	if it.PaymentUpdatedAt != "" {
		ts, err := time.Parse(time.RFC3339Nano, it.PaymentUpdatedAt)
		if err == nil {
			o.PaymentUpdatedAt = &ts
		}
	}
	return o
}
