package inventory

import (
	"context"
	"errors"
	"fmt"

	"showroom-audit/feature/inventory/csvimport"

	"github.com/minio/minio-go/v7"
)

func (s *Service) readObject(ctx context.Context, objectName string) (*csvimport.Result, error) {
	if s.client == nil {
		return nil, ErrSourceUnavailable
	}
	if objectName == "" {
		return nil, fmt.Errorf("%w: object name is empty", ErrRead)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, objectName, err)
	}
	defer obj.Close()

	res, err := csvimport.ParseDetailed(obj)
	if err != nil {
		// A missing object only surfaces on first read.
		var mh *csvimport.MalformedHeaderError
		if errors.Is(err, csvimport.ErrEmptyOrTooShort) || errors.As(err, &mh) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, objectName, err)
	}
	return res, nil
}
