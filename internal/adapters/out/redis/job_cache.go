package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/core/ports"
	"jobly/internal/pkg/logging"

	goredis "github.com/redis/go-redis/v9"
)

// cachedJob is the JSON stored under jobKey.
type cachedJob struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Salary        *int    `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

func jobKey(id job.ID) string {
	return "jobs:" + strconv.FormatInt(int64(id), 10)
}

// versionKey counts evictions of key. A fill only lands if the count it saw
// before reading the store is still current.
func versionKey(key string) string {
	return key + ":v"
}

var errStaleFill = errors.New("cache entry changed during fill")

// companyJobsKey is the set of cached job keys belonging to a company.
func companyJobsKey(handle kernel.Handle) string {
	return "companies:" + handle.String() + ":jobs"
}

// JobRepository is a read-through cache for Get. Update and Delete drop the
// cached entry; the other operations go straight to the wrapped repository.
// A fill racing with an eviction is discarded, so a job deleted or updated
// while a Get was reading the store is never written back.
type JobRepository struct {
	next   ports.JobRepository
	client goredis.UniversalClient
	ttl    time.Duration
	log    *logging.Logger
}

func NewJobRepository(
	next ports.JobRepository, client goredis.UniversalClient, ttl time.Duration, log *logging.Logger,
) *JobRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JobRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log.With("component", "job_cache"),
	}
}

func (r *JobRepository) Create(ctx context.Context, j *job.Job) (*job.Job, error) {
	return r.next.Create(ctx, j)
}

func (r *JobRepository) FindAll(ctx context.Context, filter job.Filter) ([]*job.Job, error) {
	return r.next.FindAll(ctx, filter)
}

func (r *JobRepository) ListByCompany(ctx context.Context, handle kernel.Handle) ([]*job.Job, error) {
	return r.next.ListByCompany(ctx, handle)
}

func (r *JobRepository) Get(ctx context.Context, id job.ID) (*job.Job, error) {
	if j, ok := r.load(ctx, id); ok {
		return j, nil
	}

	version, versionOK := r.version(ctx, jobKey(id))

	j, err := r.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if versionOK {
		r.store(ctx, j, version)
	}
	return j, nil
}

func (r *JobRepository) Update(ctx context.Context, id job.ID, patch job.Patch) (*job.Job, error) {
	j, err := r.next.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, jobKey(id))
	return j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id job.ID) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, jobKey(id))
	return nil
}

func (r *JobRepository) load(ctx context.Context, id job.ID) (*job.Job, bool) {
	b, err := r.client.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			r.log.Warn("cache read failed, bypassing", "key", jobKey(id), "error", err)
		}
		return nil, false
	}

	var cached cachedJob
	if err = json.Unmarshal(b, &cached); err != nil {
		r.log.Warn("cache entry is corrupt, dropping", "key", jobKey(id), "error", err)
		r.evict(ctx, jobKey(id))
		return nil, false
	}

	j, err := cached.toDomain()
	if err != nil {
		r.log.Warn("cache entry is invalid, dropping", "key", jobKey(id), "error", err)
		r.evict(ctx, jobKey(id))
		return nil, false
	}

	return j, true
}

// version returns the eviction count of key; "" when it was never evicted.
func (r *JobRepository) version(ctx context.Context, key string) (string, bool) {
	v, err := r.client.Get(ctx, versionKey(key)).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		r.log.Warn("cache version read failed, not filling", "key", key, "error", err)
		return "", false
	}
	return v, true
}

// store writes j only if key was not evicted since version was read.
func (r *JobRepository) store(ctx context.Context, j *job.Job, version string) {
	b, err := json.Marshal(fromDomain(j))
	if err != nil {
		r.log.Warn("cache encode failed", "id", j.ID(), "error", err)
		return
	}

	key := jobKey(j.ID())
	vkey := versionKey(key)
	setKey := companyJobsKey(j.CompanyHandle())

	err = r.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, vkey).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if current != version {
			return errStaleFill
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, b, r.ttl)
			pipe.SAdd(ctx, setKey, key)
			pipe.Expire(ctx, setKey, r.ttl)
			return nil
		})
		return err
	}, vkey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleFill), errors.Is(err, goredis.TxFailedErr):
		r.log.Debug("cache fill skipped, entry changed", "key", key)
	default:
		r.log.Warn("cache write failed", "key", key, "error", err)
	}
}

func (r *JobRepository) evict(ctx context.Context, key string) {
	evict(ctx, r.client, r.ttl, r.log, []string{key})
}

// evict deletes the job keys, bumping their versions, and the extra keys in
// one transaction. Versions outlive the entries they guard by one ttl.
func evict(
	ctx context.Context, client goredis.UniversalClient, ttl time.Duration, log *logging.Logger,
	keys []string, extra ...string,
) {
	if len(keys)+len(extra) == 0 {
		return
	}
	_, err := client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, key := range keys {
			pipe.Incr(ctx, versionKey(key))
			pipe.Expire(ctx, versionKey(key), ttl)
		}
		pipe.Del(ctx, append(keys, extra...)...)
		return nil
	})
	if err != nil {
		log.Warn("cache eviction failed", "keys", keys, "error", err)
	}
}

func fromDomain(j *job.Job) cachedJob {
	c := cachedJob{
		ID:            int64(j.ID()),
		Title:         j.Title(),
		Salary:        j.Salary(),
		CompanyHandle: j.CompanyHandle().String(),
	}
	if e := j.Equity(); e != nil {
		s := e.String()
		c.Equity = &s
	}
	return c
}

func (c cachedJob) toDomain() (*job.Job, error) {
	handle, err := kernel.NewHandle(c.CompanyHandle)
	if err != nil {
		return nil, err
	}
	var equity *job.Equity
	if c.Equity != nil {
		e, err := job.ParseEquity(*c.Equity)
		if err != nil {
			return nil, err
		}
		equity = &e
	}
	return job.RestoreJob(job.ID(c.ID), c.Title, c.Salary, equity, handle)
}

// CompanyRepository drops the cached jobs of a company once the company, and
// with it its jobs, is deleted.
type CompanyRepository struct {
	ports.CompanyRepository
	client goredis.UniversalClient
	ttl    time.Duration
	log    *logging.Logger
}

// NewCompanyRepository takes the same ttl as the JobRepository sharing client.
func NewCompanyRepository(
	next ports.CompanyRepository, client goredis.UniversalClient, ttl time.Duration, log *logging.Logger,
) *CompanyRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CompanyRepository{
		CompanyRepository: next,
		client:            client,
		ttl:               ttl,
		log:               log.With("component", "job_cache"),
	}
}

func (r *CompanyRepository) Delete(ctx context.Context, handle kernel.Handle) error {
	if err := r.CompanyRepository.Delete(ctx, handle); err != nil {
		return err
	}

	setKey := companyJobsKey(handle)
	keys, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		r.log.Warn("cache read failed, jobs may stay cached until expiry", "key", setKey, "error", err)
		return nil
	}
	evict(ctx, r.client, r.ttl, r.log, keys, setKey)
	return nil
}

var (
	_ ports.JobRepository     = (*JobRepository)(nil)
	_ ports.CompanyRepository = (*CompanyRepository)(nil)
)
