package repository

import (
	"context"
	"errors"
	"sort"

	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "servicios"

// ServiceDynamoRepository persists catalog services in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Reads accept legacy item shapes; writes always use the canonical keys
// (titulo, descripcion, precio_base).
type ServiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, "SERVICES_TABLE", defaultServicesTableName),
	}
}

// List returns every service ordered by id.
func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, item := range items {
		s, err := fromServiceAttributes(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}
	return fromServiceAttributes(out.Item)
}

// Save upserts the service. The item is replaced as a whole, so legacy short
// keys are dropped on the first save.
func (r *ServiceDynamoRepository) Save(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := toServiceAttributes(s)
	if err != nil {
		return entities.Service{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) UpdateImage(ctx context.Context, id, imageURL string) (entities.Service, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #img = :img"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#img": "img",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":img": &types.AttributeValueMemberS{Value: imageURL},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}
	return fromServiceAttributes(out.Attributes)
}
