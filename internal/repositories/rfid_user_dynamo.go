package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/logger"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

// DynamoAPI is the subset of the DynamoDB client used by the directory.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Item attribute names
const (
	attrUID          = "uid"
	attrName         = "name"
	attrResourceLink = "resourceLink"
	attrCreatedAt    = "createdAt"
	attrUpdatedAt    = "updatedAt"
)

// NewDynamoClient loads the default AWS configuration for region, pointing at
// endpoint when one is given (DynamoDB Local, LocalStack).
func NewDynamoClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if endpoint != "" {
		opts = append(opts, config.WithBaseEndpoint(endpoint))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

// RFIDUserDynamoRepository stores directory records as DynamoDB items keyed by uid.
type RFIDUserDynamoRepository struct {
	client    DynamoAPI
	tableName string
	now       func() time.Time
}

func NewRFIDUserDynamoRepository(client DynamoAPI, tableName string) *RFIDUserDynamoRepository {
	return &RFIDUserDynamoRepository{
		client:    client,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// EnsureTable creates the table if it does not exist and waits until it is active.
func (r *RFIDUserDynamoRepository) EnsureTable(ctx context.Context, maxWait time.Duration) error {
	_, err := r.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrUID), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrUID), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})

	var inUse *types.ResourceInUseException
	switch {
	case errors.As(err, &inUse):
		logger.Log.Infow("dynamodb table already exists", "table", r.tableName)
		return nil
	case err != nil:
		return fmt.Errorf("CreateTable: %w", err)
	}

	logger.Log.Infow("dynamodb table created", "table", r.tableName)
	waiter := dynamodb.NewTableExistsWaiter(r.client)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)}, maxWait)
}

func (r *RFIDUserDynamoRepository) key(uid string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrUID: &types.AttributeValueMemberS{Value: uid},
	}
}

// FindByUID returns the record stored under a normalized uid, or nil if there is none.
func (r *RFIDUserDynamoRepository) FindByUID(ctx context.Context, uid string) (*models.RFIDUser, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(uid),
		ConsistentRead: aws.Bool(true),
	})

	logger.Log.Infow("dynamodb", "op", "GetItem", "uid", uid, "error", err)

	if err != nil {
		return nil, fmt.Errorf("GetItem: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return unmarshalRFIDUser(out.Item)
}

// ListAll scans the table and returns records, most recently created first.
func (r *RFIDUserDynamoRepository) ListAll(ctx context.Context) ([]models.RFIDUser, error) {
	users := []models.RFIDUser{}

	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			logger.Log.Infow("dynamodb", "op", "Scan", "error", err)
			return nil, fmt.Errorf("Scan: %w", err)
		}
		for _, item := range page.Items {
			user, err := unmarshalRFIDUser(item)
			if err != nil {
				return nil, err
			}
			users = append(users, *user)
		}
	}

	sort.SliceStable(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].UID < users[j].UID
	})

	logger.Log.Infow("dynamodb", "op", "Scan", "result", len(users))
	return users, nil
}

// Insert stores a new record unless one already exists under the same uid.
func (r *RFIDUserDynamoRepository) Insert(ctx context.Context, user models.RFIDUser) (*models.RFIDUser, error) {
	now := r.now()
	user.CreatedAt, user.UpdatedAt = now, now

	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     marshalRFIDUser(user),
		ConditionExpression:      aws.String("attribute_not_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{"#uid": attrUID},
	})

	logger.Log.Infow("dynamodb", "op", "PutItem", "uid", user.UID, "error", err)

	if isConditionFailed(err) {
		return nil, models.ErrUserAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("PutItem: %w", err)
	}
	return &user, nil
}

// Update applies the non-nil fields of patch to the record stored under uid.
func (r *RFIDUserDynamoRepository) Update(ctx context.Context, uid string, patch models.RFIDUserPatch) (*models.RFIDUser, error) {
	names := map[string]string{"#uid": attrUID, "#updatedAt": attrUpdatedAt}
	values := map[string]types.AttributeValue{
		":now": &types.AttributeValueMemberS{Value: formatTime(r.now())},
	}
	sets := []string{"#updatedAt = :now"}

	if patch.Name != nil {
		names["#name"] = attrName
		values[":name"] = &types.AttributeValueMemberS{Value: *patch.Name}
		sets = append(sets, "#name = :name")
	}
	if patch.ResourceLink != nil {
		names["#resourceLink"] = attrResourceLink
		values[":resourceLink"] = &types.AttributeValueMemberS{Value: *patch.ResourceLink}
		sets = append(sets, "#resourceLink = :resourceLink")
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(uid),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String("attribute_exists(#uid)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})

	logger.Log.Infow("dynamodb", "op", "UpdateItem", "uid", uid, "error", err)

	if isConditionFailed(err) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateItem: %w", err)
	}
	return unmarshalRFIDUser(out.Attributes)
}

// Delete removes the record stored under uid.
func (r *RFIDUserDynamoRepository) Delete(ctx context.Context, uid string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      r.key(uid),
		ConditionExpression:      aws.String("attribute_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{"#uid": attrUID},
	})

	logger.Log.Infow("dynamodb", "op", "DeleteItem", "uid", uid, "error", err)

	if isConditionFailed(err) {
		return models.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("DeleteItem: %w", err)
	}
	return nil
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func marshalRFIDUser(u models.RFIDUser) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrUID:          &types.AttributeValueMemberS{Value: u.UID},
		attrName:         &types.AttributeValueMemberS{Value: u.Name},
		attrResourceLink: &types.AttributeValueMemberS{Value: u.ResourceLink},
		attrCreatedAt:    &types.AttributeValueMemberS{Value: formatTime(u.CreatedAt)},
		attrUpdatedAt:    &types.AttributeValueMemberS{Value: formatTime(u.UpdatedAt)},
	}
}

func unmarshalRFIDUser(item map[string]types.AttributeValue) (*models.RFIDUser, error) {
	str := func(name string) (string, error) {
		v, ok := item[name].(*types.AttributeValueMemberS)
		if !ok {
			return "", fmt.Errorf("attribute %q is missing or not a string", name)
		}
		return v.Value, nil
	}
	ts := func(name string) (time.Time, error) {
		s, err := str(name)
		if err != nil {
			return time.Time{}, err
		}
		return time.Parse(time.RFC3339Nano, s)
	}

	var (
		u   models.RFIDUser
		err error
	)
	if u.UID, err = str(attrUID); err != nil {
		return nil, err
	}
	if u.Name, err = str(attrName); err != nil {
		return nil, err
	}
	if u.ResourceLink, err = str(attrResourceLink); err != nil {
		return nil, err
	}
	if u.CreatedAt, err = ts(attrCreatedAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = ts(attrUpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
