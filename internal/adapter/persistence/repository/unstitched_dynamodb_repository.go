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

const defaultUnstitchedItemsTableName = "unstitched_items"

type unstitchedCatalogItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Category    string   `dynamodbav:"category,omitempty"`
	Price       string   `dynamodbav:"price"`
	Images      []string `dynamodbav:"images"`
	Description string   `dynamodbav:"description,omitempty"`
	Sizes       []string `dynamodbav:"sizes"`
}

// UnstitchedItemDynamoRepository persists UnstitchedItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type UnstitchedItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUnstitchedItemRepository = (*UnstitchedItemDynamoRepository)(nil)

func NewUnstitchedItemDynamoRepository(ddb *dynamodb.Client) *UnstitchedItemDynamoRepository {
	return &UnstitchedItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UNSTITCHED_ITEMS_TABLE", defaultUnstitchedItemsTableName),
	}
}

func (r *UnstitchedItemDynamoRepository) Create(ctx context.Context, item entities.UnstitchedItem) (entities.UnstitchedItem, error) {
	av, err := attributevalue.MarshalMap(toUnstitchedCatalogItem(item))
	if err != nil {
		return entities.UnstitchedItem{}, err
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
		return entities.UnstitchedItem{}, err
	}
	return item, nil
}

func (r *UnstitchedItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.UnstitchedItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UnstitchedItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.UnstitchedItem{}, nil
	}

	var it unstitchedCatalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UnstitchedItem{}, err
	}
	return fromUnstitchedCatalogItem(it), nil
}

func (r *UnstitchedItemDynamoRepository) List(ctx context.Context) ([]entities.UnstitchedItem, error) {
	var items []entities.UnstitchedItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []unstitchedCatalogItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			items = append(items, fromUnstitchedCatalogItem(it))
		}

		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *UnstitchedItemDynamoRepository) Update(ctx context.Context, item entities.UnstitchedItem) (entities.UnstitchedItem, error) {
	av, err := attributevalue.MarshalMap(toUnstitchedCatalogItem(item))
	if err != nil {
		return entities.UnstitchedItem{}, err
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
		return entities.UnstitchedItem{}, err
	}
	return item, nil
}

func (r *UnstitchedItemDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *UnstitchedItemDynamoRepository) DeleteMany(ctx context.Context, ids []string) error {
	return batchDeleteIDs(ctx, r.ddb, r.tableName, ids)
}

func toUnstitchedCatalogItem(item entities.UnstitchedItem) unstitchedCatalogItem {
	return unstitchedCatalogItem{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Price:       floatToString(item.Price),
		Images:      item.Images,
		Description: item.Description,
		Sizes:       item.Sizes,
	}
}

func fromUnstitchedCatalogItem(it unstitchedCatalogItem) entities.UnstitchedItem {
	return entities.UnstitchedItem{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Price:       stringToFloat(it.Price),
		Images:      it.Images,
		Description: it.Description,
		Sizes:       it.Sizes,
	}
}
