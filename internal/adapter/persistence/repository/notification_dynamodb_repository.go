package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsUserIDIndex      = "user_id-index"
)

type notificationItem struct {
	ID        string            `dynamodbav:"id"`
	UserID    string            `dynamodbav:"user_id"`
	Title     string            `dynamodbav:"title"`
	Message   string            `dynamodbav:"message"`
	Type      string            `dynamodbav:"type"`
	Category  string            `dynamodbav:"category"`
	Read      bool              `dynamodbav:"read"`
	Link      string            `dynamodbav:"link,omitempty"`
	Metadata  map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt string            `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client, tableName string) *NotificationDynamoRepository {
	if tableName == "" {
		tableName = defaultNotificationsTableName
	}
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

// ListByUserID returns the user's notifications, newest first.
func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// MarkRead flips the read flag. It returns a zero Notification when the id does
// not exist or belongs to another user.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, userID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :uid"),
		UpdateExpression:    aws.String("SET #read = :read"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
			"#read":    "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":  &types.AttributeValueMemberS{Value: userID},
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Category:  n.Category,
		Read:      n.Read,
		Link:      n.Link,
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Title:     it.Title,
		Message:   it.Message,
		Type:      it.Type,
		Category:  it.Category,
		Read:      it.Read,
		Link:      it.Link,
		Metadata:  it.Metadata,
		CreatedAt: createdAt,
	}
}
