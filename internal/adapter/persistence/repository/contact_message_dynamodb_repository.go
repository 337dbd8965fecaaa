package repository

import (
	"context"
	"errors"
	"time"

	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContactMessagesTableName = "contact_messages"

type contactMessageItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Message   string `dynamodbav:"message"`
	Status    string `dynamodbav:"status"`
	Source    string `dynamodbav:"source,omitempty"`
	AINote    string `dynamodbav:"ia_note,omitempty"`
	CreatedAt string `dynamodbav:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt,omitempty"`
}

// ContactMessageDynamoRepository persists contact submissions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ContactMessageDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IContactMessageRepository = (*ContactMessageDynamoRepository)(nil)

func NewContactMessageDynamoRepository(ddb DynamoAPI, tableName string) *ContactMessageDynamoRepository {
	return &ContactMessageDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, "CONTACT_MESSAGES_TABLE", defaultContactMessagesTableName),
		now:       time.Now,
	}
}

func (r *ContactMessageDynamoRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	av, err := attributevalue.MarshalMap(toContactMessageItem(m))
	if err != nil {
		return entities.ContactMessage{}, err
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
		return entities.ContactMessage{}, err
	}
	return m, nil
}

func (r *ContactMessageDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContactMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContactMessage{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContactMessage{}, nil
	}

	var it contactMessageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContactMessage{}, err
	}
	return fromContactMessageItem(it), nil
}

func (r *ContactMessageDynamoRepository) List(ctx context.Context) ([]entities.ContactMessage, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var its []contactMessageItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.ContactMessage, 0, len(its))
	for _, it := range its {
		out = append(out, fromContactMessageItem(it))
	}
	return out, nil
}

// UpdateStatus returns an empty message when id does not exist.
func (r *ContactMessageDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ContactStatus) (entities.ContactMessage, error) {
	now := r.now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updatedAt",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContactMessage{}, nil
		}
		return entities.ContactMessage{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ContactMessage{}, nil
	}
	var it contactMessageItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ContactMessage{}, err
	}
	return fromContactMessageItem(it), nil
}

func (r *ContactMessageDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toContactMessageItem(m entities.ContactMessage) contactMessageItem {
	return contactMessageItem{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    string(m.Status),
		Source:    string(m.Source),
		AINote:    m.AINote,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContactMessageItem(it contactMessageItem) entities.ContactMessage {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	source := entities.ContactSource(it.Source)
	if source == "" {
		source = entities.ContactSourceForm
	}
	status := entities.ContactStatus(it.Status)
	if !status.Valid() {
		status = entities.ContactStatusPendiente
	}
	return entities.ContactMessage{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Message:   it.Message,
		Status:    status,
		Source:    source,
		AINote:    it.AINote,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
