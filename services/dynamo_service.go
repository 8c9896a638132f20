package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type DynamoService struct {
	Client *dynamodb.Client
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// PutItem marshals and stores an item in the given table
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &tableName,
		Item:      marshaledItem,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// GetItem retrieves an item from DynamoDB
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}

	if output.Item == nil {
		return nil, ErrItemNotFound
	}

	return output.Item, nil
}

// DeleteItem removes an item from DynamoDB
func (ds *DynamoService) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	_, err := ds.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item from table '%s': %w", tableName, err)
	}
	return nil
}

// bundleItem is the single DynamoDB row a persisted bundle lives in
type bundleItem struct {
	BundleKey string `dynamodbav:"bundleKey"`
	Payload   []byte `dynamodbav:"payload"`
}

// DynamoBlobStore persists the store bundle as one item in a DynamoDB table.
type DynamoBlobStore struct {
	Dynamo    *DynamoService
	TableName string
	BundleKey string
}

func (d *DynamoBlobStore) Load(ctx context.Context) ([]byte, error) {
	key := map[string]types.AttributeValue{
		"bundleKey": &types.AttributeValueMemberS{Value: d.BundleKey},
	}
	item, err := d.Dynamo.GetItem(ctx, d.TableName, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrBlobNotFound
		}
		return nil, err
	}

	var row bundleItem
	if err := attributevalue.UnmarshalMap(item, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bundle item: %w", err)
	}
	return row.Payload, nil
}

func (d *DynamoBlobStore) Save(ctx context.Context, data []byte) error {
	row := bundleItem{BundleKey: d.BundleKey, Payload: data}
	if err := d.Dynamo.PutItem(ctx, d.TableName, row); err != nil {
		return fmt.Errorf("failed to save bundle: %w", err)
	}
	return nil
}
