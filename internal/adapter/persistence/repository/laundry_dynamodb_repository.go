package repository

import (
	"context"

	"serving_u/internal/domain/entities"
	"serving_u/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLaundryItemsTableName = "laundry_items"

type laundryCatalogItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Category string `dynamodbav:"category,omitempty"`
	Price    string `dynamodbav:"price"`
	Unit     string `dynamodbav:"unit,omitempty"`
	Image    string `dynamodbav:"image,omitempty"`
}

// LaundryItemDynamoRepository persists LaundryItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LaundryItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILaundryItemRepository = (*LaundryItemDynamoRepository)(nil)

func NewLaundryItemDynamoRepository(ddb *dynamodb.Client) *LaundryItemDynamoRepository {
	return &LaundryItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LAUNDRY_ITEMS_TABLE", defaultLaundryItemsTableName),
	}
}

func (r *LaundryItemDynamoRepository) Create(ctx context.Context, item entities.LaundryItem) (entities.LaundryItem, error) {
	av, err := attributevalue.MarshalMap(toLaundryCatalogItem(item))
	if err != nil {
		return entities.LaundryItem{}, err
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
		return entities.LaundryItem{}, err
	}
	return item, nil
}

func (r *LaundryItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.LaundryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LaundryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.LaundryItem{}, nil
	}

	var it laundryCatalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LaundryItem{}, err
	}
	return fromLaundryCatalogItem(it), nil
}

func (r *LaundryItemDynamoRepository) List(ctx context.Context) ([]entities.LaundryItem, error) {
	var items []entities.LaundryItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []laundryCatalogItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			items = append(items, fromLaundryCatalogItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Update replaces the whole item. The usecase reads the existing record first,
// so a full put is simpler than per-attribute SET expressions for a small
// catalog document.
func (r *LaundryItemDynamoRepository) Update(ctx context.Context, item entities.LaundryItem) (entities.LaundryItem, error) {
	av, err := attributevalue.MarshalMap(toLaundryCatalogItem(item))
	if err != nil {
		return entities.LaundryItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LaundryItem{}, err
	}
	return item, nil
}

func (r *LaundryItemDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *LaundryItemDynamoRepository) DeleteMany(ctx context.Context, ids []string) error {
	return batchDeleteIDs(ctx, r.ddb, r.tableName, ids)
}

func toLaundryCatalogItem(item entities.LaundryItem) laundryCatalogItem {
	return laundryCatalogItem{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Price:    floatToString(item.Price),
		Unit:     item.Unit,
		Image:    item.Image,
	}
}

func fromLaundryCatalogItem(it laundryCatalogItem) entities.LaundryItem {
	return entities.LaundryItem{
		ID:       it.ID,
		Name:     it.Name,
		Category: it.Category,
		Price:    stringToFloat(it.Price),
		Unit:     it.Unit,
		Image:    it.Image,
	}
}
