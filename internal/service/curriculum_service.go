package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"slcm-curriculum/config"
	"slcm-curriculum/internal/curriculum"
	"slcm-curriculum/internal/dto"
	"slcm-curriculum/internal/model"
	"slcm-curriculum/internal/repository"
	applogger "slcm-curriculum/pkg/logger"
	"slcm-curriculum/pkg/metrics"
)

// ── 课程体系模块业务错误 ──

var (
	ErrCurriculumScopeInvalid = errors.New("编辑范围不完整")
	ErrCurriculumNotFound     = errors.New("课程体系不存在")
	ErrAcademicSystemInvalid  = errors.New("学制无效")
	ErrSemesterInvalid        = errors.New("学期标签与当前学制不符")
	ErrAxisValueInvalid       = errors.New("分组取值未配置或已停用")
	ErrClusterBoundsInvalid   = errors.New("课组选课数上下限无效")
	ErrEntryNotFound          = errors.New("条目不存在")
	ErrEntryDuplicate         = errors.New("同一分组内已存在同名条目")
	ErrCourseNotFound         = errors.New("课程不存在")
	ErrRestrictedTerm         = curriculum.ErrRestrictedTerm
)

// 写操作指标中的 action 标签
const (
	actionSave        = "save"
	actionAddCourses  = "add_courses"
	actionAddCluster  = "add_cluster"
	actionUpdateEntry = "update_entry"
	actionRemoveEntry = "remove_entry"
	actionAddTerm     = "add_term"
	actionRemoveTerms = "remove_terms"
	actionMigrate     = "migrate"
)

// CurriculumService 课程体系业务接口
//
// 每次调用：加载范围内的课程体系 → 执行一个操作 → 整体覆盖保存。
// 写操作之间不加锁，并发保存以最后一次写入为准。
type CurriculumService interface {
	// Get 查询课程体系；尚未建档时返回带默认学期的空课程体系
	Get(ctx context.Context, q *dto.CurriculumQuery) (*dto.CurriculumResponse, error)
	// Save 整体保存（全量覆盖）
	Save(ctx context.Context, req *dto.SaveCurriculumRequest, callerID string) (*dto.CurriculumResponse, error)
	// AddCourses 批量添加课程，重复项跳过并计数
	AddCourses(ctx context.Context, req *dto.AddCoursesRequest, callerID string) (*dto.AddCoursesResponse, error)
	AddCluster(ctx context.Context, req *dto.AddClusterRequest, callerID string) (*dto.CurriculumResponse, error)
	UpdateEntry(ctx context.Context, req *dto.UpdateEntryRequest, callerID string) (*dto.CurriculumResponse, error)
	RemoveEntry(ctx context.Context, req *dto.RemoveEntryRequest, callerID string) (*dto.CurriculumResponse, error)
	AddTerm(ctx context.Context, req *dto.AddTermRequest, callerID string) (*dto.AddTermResponse, error)
	RemoveTerms(ctx context.Context, req *dto.RemoveTermsRequest, callerID string) (*dto.RemoveTermsResponse, error)
	// MigrateCourseTypes 将推断出的课程类型写回旧数据
	MigrateCourseTypes(ctx context.Context, req *dto.MigrateCourseTypesRequest, callerID string) (*dto.MigrateCourseTypesResponse, error)
}

type curriculumService struct {
	repo     *repository.Repository
	typeDefs TypeDefService
	validate *validator.Validate
	cfg      *config.CurriculumConfig
	logger   *zap.Logger
}

// NewCurriculumService 创建 CurriculumService 实例
func NewCurriculumService(cfg *config.CurriculumConfig, repo *repository.Repository, typeDefs TypeDefService, logger *zap.Logger) CurriculumService {
	return &curriculumService{
		repo:     repo,
		typeDefs: typeDefs,
		validate: newValidator(),
		cfg:      cfg,
		logger:   logger,
	}
}

// workspace 一次请求内的编辑现场
type workspace struct {
	header *model.Curriculum // CurriculumID 为空表示尚未建档
	store  *curriculum.Store
}

func (w *workspace) exists() bool { return w.header.CurriculumID != "" }

// ────────────────────── Get ──────────────────────

func (s *curriculumService) Get(ctx context.Context, q *dto.CurriculumQuery) (*dto.CurriculumResponse, error) {
	if err := checkScope(q.CurriculumScope); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validate, q); err != nil {
		return nil, err
	}

	ws, err := s.load(ctx, q.CurriculumScope, q.AcademicSystem)
	if err != nil {
		return nil, err
	}
	return s.render(ws), nil
}

// ────────────────────── Save ──────────────────────

func (s *curriculumService) Save(ctx context.Context, req *dto.SaveCurriculumRequest, callerID string) (*dto.CurriculumResponse, error) {
	if err := checkScope(req.CurriculumScope); err != nil {
		return nil, err
	}
	if req.Department == "" || req.AcademicSystem == "" {
		return nil, fmt.Errorf("%w: department 与 academic_system 不能为空", ErrCurriculumScopeInvalid)
	}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	ws, err := s.load(ctx, req.CurriculumScope, req.AcademicSystem)
	if err != nil {
		return nil, err
	}

	ws.header.Department = req.Department
	extra := ws.store.ExtraTerms()
	if req.ExtraTerms != nil {
		extra = req.ExtraTerms
	}
	entries := make([]curriculum.Entry, 0, len(req.Courses))
	for _, c := range req.Courses {
		entries = append(entries, fromDTOEntry(c))
	}
	ws.store.Load(entries, extra)
	if dups := ws.store.Duplicates(); len(dups) > 0 {
		metrics.CurriculumMutation(actionSave, metrics.ResultRejected)
		parts := make([]string, 0, len(dups))
		for _, k := range dups {
			parts = append(parts, k.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrEntryDuplicate, strings.Join(parts, "; "))
	}

	if err := s.persist(ctx, ws, callerID, actionSave); err != nil {
		return nil, err
	}
	return s.render(ws), nil
}

// ────────────────────── AddCourses ──────────────────────

func (s *curriculumService) AddCourses(ctx context.Context, req *dto.AddCoursesRequest, callerID string) (*dto.AddCoursesResponse, error) {
	if err := s.checkWrite(req.WorkspaceScope, req); err != nil {
		return nil, err
	}

	ws, err := s.loadForWrite(ctx, req.WorkspaceScope)
	if err != nil {
		return nil, err
	}
	target, err := s.target(ws, req.GroupTarget, true)
	if err != nil {
		return nil, err
	}

	refs, err := s.courseRefs(ctx, req.Courses)
	if err != nil {
		return nil, err
	}

	res := ws.store.AddCourses(target, refs)
	metrics.DuplicatesSkipped(res.Skipped)
	if res.Added > 0 {
		if err := s.persist(ctx, ws, callerID, actionAddCourses); err != nil {
			return nil, err
		}
	} else {
		metrics.CurriculumMutation(actionAddCourses, metrics.ResultRejected)
	}

	return &dto.AddCoursesResponse{
		Added:      res.Added,
		Skipped:    res.Skipped,
		Curriculum: s.render(ws),
	}, nil
}

// ────────────────────── AddCluster ──────────────────────

func (s *curriculumService) AddCluster(ctx context.Context, req *dto.AddClusterRequest, callerID string) (*dto.CurriculumResponse, error) {
	if err := s.checkWrite(req.WorkspaceScope, req); err != nil {
		return nil, err
	}

	ws, err := s.loadForWrite(ctx, req.WorkspaceScope)
	if err != nil {
		return nil, err
	}
	target, err := s.target(ws, req.GroupTarget, true)
	if err != nil {
		return nil, err
	}

	spec := curriculum.ClusterSpec{
		Name:       strings.TrimSpace(req.ClusterName),
		MinCourses: req.MinCourses,
		MaxCourses: req.MaxCourses,
	}
	if !ws.store.AddCluster(target, spec) {
		metrics.CurriculumMutation(actionAddCluster, metrics.ResultRejected)
		return nil, ErrEntryDuplicate
	}

	if err := s.persist(ctx, ws, callerID, actionAddCluster); err != nil {
		return nil, err
	}
	return s.render(ws), nil
}

// ────────────────────── UpdateEntry ──────────────────────

func (s *curriculumService) UpdateEntry(ctx context.Context, req *dto.UpdateEntryRequest, callerID string) (*dto.CurriculumResponse, error) {
	if err := checkScope(req.CurriculumScope); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	ws, err := s.loadExisting(ctx, req.CurriculumScope)
	if err != nil {
		return nil, err
	}
	target, err := s.target(ws, req.GroupTarget, false)
	if err != nil {
		return nil, err
	}

	kind := curriculum.EntryKind(req.EntryKind)
	if err := checkPatchKind(kind, req); err != nil {
		return nil, err
	}
	current, found := ws.store.Find(ws.store.Match(target, kind, req.Identity))
	if !found {
		metrics.CurriculumMutation(actionUpdateEntry, metrics.ResultRejected)
		return nil, ErrEntryNotFound
	}
	if kind == curriculum.KindCluster {
		minCourses, maxCourses := current.MinCourses, current.MaxCourses
		if req.MinCourses != nil {
			minCourses = *req.MinCourses
		}
		if req.MaxCourses != nil {
			maxCourses = *req.MaxCourses
		}
		if minCourses < 1 || minCourses > maxCourses {
			return nil, ErrClusterBoundsInvalid
		}
	}

	ws.store.Update(target, kind, req.Identity, curriculum.Patch{
		Credits:    req.Credits,
		MinCourses: req.MinCourses,
		MaxCourses: req.MaxCourses,
	})

	if err := s.persist(ctx, ws, callerID, actionUpdateEntry); err != nil {
		return nil, err
	}
	return s.render(ws), nil
}

// checkPatchKind 学分仅适用于课程，选课数上下限仅适用于课组
func checkPatchKind(kind curriculum.EntryKind, req *dto.UpdateEntryRequest) error {
	var details []dto.ValidationErrorDetail
	switch kind {
	case curriculum.KindCourse:
		if req.MinCourses != nil {
			details = append(details, dto.ValidationErrorDetail{Field: "min_courses", Message: "仅课组可设置"})
		}
		if req.MaxCourses != nil {
			details = append(details, dto.ValidationErrorDetail{Field: "max_courses", Message: "仅课组可设置"})
		}
	case curriculum.KindCluster:
		if req.Credits != nil {
			details = append(details, dto.ValidationErrorDetail{Field: "credits", Message: "仅课程可设置"})
		}
	}
	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}

// ────────────────────── RemoveEntry ──────────────────────

func (s *curriculumService) RemoveEntry(ctx context.Context, req *dto.RemoveEntryRequest, callerID string) (*dto.CurriculumResponse, error) {
	if err := checkScope(req.CurriculumScope); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	ws, err := s.loadExisting(ctx, req.CurriculumScope)
	if err != nil {
		return nil, err
	}
	target, err := s.target(ws, req.GroupTarget, false)
	if err != nil {
		return nil, err
	}

	if !ws.store.RemoveOne(ws.store.Match(target, curriculum.EntryKind(req.EntryKind), req.Identity)) {
		metrics.CurriculumMutation(actionRemoveEntry, metrics.ResultRejected)
		return nil, ErrEntryNotFound
	}

	if err := s.persist(ctx, ws, callerID, actionRemoveEntry); err != nil {
		return nil, err
	}
	return s.render(ws), nil
}

// ────────────────────── AddTerm ──────────────────────

func (s *curriculumService) AddTerm(ctx context.Context, req *dto.AddTermRequest, callerID string) (*dto.AddTermResponse, error) {
	if err := s.checkWrite(req.WorkspaceScope, req); err != nil {
		return nil, err
	}

	ws, err := s.loadForWrite(ctx, req.WorkspaceScope)
	if err != nil {
		return nil, err
	}

	n := ws.store.AddTerm()
	if err := s.persist(ctx, ws, callerID, actionAddTerm); err != nil {
		return nil, err
	}

	return &dto.AddTermResponse{
		Term:       n,
		Label:      ws.store.System().Label(n),
		Curriculum: s.render(ws),
	}, nil
}

// ────────────────────── RemoveTerms ──────────────────────

func (s *curriculumService) RemoveTerms(ctx context.Context, req *dto.RemoveTermsRequest, callerID string) (*dto.RemoveTermsResponse, error) {
	if err := checkScope(req.CurriculumScope); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	ws, err := s.loadExisting(ctx, req.CurriculumScope)
	if err != nil {
		return nil, err
	}

	terms, removed, err := ws.store.RemoveTerms(req.Terms)
	if err != nil {
		metrics.CurriculumMutation(actionRemoveTerms, metrics.ResultRejected)
		return nil, err
	}

	// 请求的学期均不在当前列表中时无需写库
	if len(terms) > 0 {
		if err := s.persist(ctx, ws, callerID, actionRemoveTerms); err != nil {
			return nil, err
		}
	}

	return &dto.RemoveTermsResponse{
		RemovedTerms:   terms,
		RemovedEntries: removed,
		Curriculum:     s.render(ws),
	}, nil
}

// ────────────────────── MigrateCourseTypes ──────────────────────

func (s *curriculumService) MigrateCourseTypes(ctx context.Context, req *dto.MigrateCourseTypesRequest, callerID string) (*dto.MigrateCourseTypesResponse, error) {
	if err := checkScope(req.CurriculumScope); err != nil {
		return nil, err
	}

	ws, err := s.loadExisting(ctx, req.CurriculumScope)
	if err != nil {
		return nil, err
	}

	n := ws.store.MigrateLegacy()
	if n > 0 {
		if err := s.persist(ctx, ws, callerID, actionMigrate); err != nil {
			return nil, err
		}
	}

	return &dto.MigrateCourseTypesResponse{
		Migrated:   n,
		Curriculum: s.render(ws),
	}, nil
}

// ═══════════════════════════════════════════════════════════
// 加载与保存
// ═══════════════════════════════════════════════════════════

// load 加载范围内的课程体系；不存在时返回未建档的空现场。
// 学制取值顺序：请求参数 → 已存学制 → 配置默认值。
func (s *curriculumService) load(ctx context.Context, scope dto.CurriculumScope, system string) (*workspace, error) {
	log := applogger.WithScope(s.logger, scope.Program, scope.AcademicYear, scope.Batch, scope.Section)

	header, err := s.repo.Curriculum.GetByScope(ctx, toModelScope(scope))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("查询课程体系失败", zap.Error(err))
		return nil, err
	}

	var rows []model.CurriculumCourse
	if header == nil {
		header = &model.Curriculum{
			Program:      scope.Program,
			AcademicYear: scope.AcademicYear,
			Batch:        scope.Batch,
			Section:      scope.Section,
		}
	} else {
		rows, err = s.repo.Curriculum.ListCourses(ctx, header.CurriculumID)
		if err != nil {
			log.Error("查询课程体系明细失败", zap.String("curriculum_id", header.CurriculumID), zap.Error(err))
			return nil, err
		}
	}

	switch {
	case system != "":
		header.AcademicSystem = system
	case header.AcademicSystem == "":
		header.AcademicSystem = s.cfg.DefaultAcademicSystem
	}
	academicSystem := curriculum.AcademicSystem(header.AcademicSystem)
	if !academicSystem.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrAcademicSystemInvalid, header.AcademicSystem)
	}

	resolver, err := s.typeDefs.Resolver(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]curriculum.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, fromModelRow(r))
	}
	store := curriculum.NewStore(academicSystem, resolver)
	store.Load(entries, header.ExtraTerms)

	return &workspace{header: header, store: store}, nil
}

// loadForWrite 写操作加载；首次写入时以请求中的院系建档
func (s *curriculumService) loadForWrite(ctx context.Context, scope dto.WorkspaceScope) (*workspace, error) {
	ws, err := s.load(ctx, scope.CurriculumScope, scope.AcademicSystem)
	if err != nil {
		return nil, err
	}
	if scope.Department != "" {
		ws.header.Department = scope.Department
	}
	if !ws.exists() && ws.header.Department == "" {
		return nil, fmt.Errorf("%w: 新建课程体系须提供 department", ErrCurriculumScopeInvalid)
	}
	return ws, nil
}

// loadExisting 仅作用于已建档课程体系的操作
func (s *curriculumService) loadExisting(ctx context.Context, scope dto.CurriculumScope) (*workspace, error) {
	ws, err := s.load(ctx, scope, "")
	if err != nil {
		return nil, err
	}
	if !ws.exists() {
		return nil, ErrCurriculumNotFound
	}
	return ws, nil
}

// persist 在一个事务内写入头表并整体替换明细；失败时存储保持原样，可直接重试
func (s *curriculumService) persist(ctx context.Context, ws *workspace, callerID, action string) error {
	log := applogger.WithScope(s.logger, ws.header.Program, ws.header.AcademicYear, ws.header.Batch, ws.header.Section)

	if err := s.write(ctx, ws, callerID); err != nil {
		metrics.CurriculumMutation(action, metrics.ResultError)
		log.Error("保存课程体系失败", zap.String("action", action), zap.Error(err))
		return err
	}

	metrics.CurriculumMutation(action, metrics.ResultOK)
	log.Info("课程体系已保存",
		zap.String("action", action),
		zap.String("curriculum_id", ws.header.CurriculumID),
		zap.Int("entries", ws.store.Len()),
	)
	return nil
}

func (s *curriculumService) write(ctx context.Context, ws *workspace, callerID string) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	repo := s.repo.WithTx(tx)

	header := ws.header
	header.ExtraTerms = model.IntArray(ws.store.ExtraTerms())
	if callerID != "" {
		if !ws.exists() {
			header.CreatedBy = &callerID
		}
		header.UpdatedBy = &callerID
	}

	entries := ws.store.Serialize()
	rows := make([]model.CurriculumCourse, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, toModelRow(e))
	}

	err = repo.Curriculum.Save(ctx, header)
	if err == nil {
		err = repo.Curriculum.ReplaceCourses(ctx, header.CurriculumID, rows)
	}
	if err != nil {
		if tx != nil {
			tx.Rollback()
		}
		return err
	}
	if tx != nil {
		return tx.Commit().Error
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// 内部辅助方法
// ═══════════════════════════════════════════════════════════

// checkScope program 与 academic_year 是所有课程体系操作的前提
func checkScope(scope dto.CurriculumScope) error {
	var missing []string
	if strings.TrimSpace(scope.Program) == "" {
		missing = append(missing, "program")
	}
	if strings.TrimSpace(scope.AcademicYear) == "" {
		missing = append(missing, "academic_year")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s 不能为空", ErrCurriculumScopeInvalid, strings.Join(missing, ", "))
	}
	return nil
}

func (s *curriculumService) checkWrite(scope dto.WorkspaceScope, req interface{}) error {
	if err := checkScope(scope.CurriculumScope); err != nil {
		return err
	}
	return validateStruct(s.validate, req)
}

// target 校验写入上下文：学期须属于当前学制，新增时分组取值须为启用的类型。
// 编辑与删除可作用于配置外的分组（strict=false），以便清理历史数据
func (s *curriculumService) target(ws *workspace, g dto.GroupTarget, strict bool) (curriculum.Target, error) {
	system := ws.store.System()
	if _, ok := system.ParseLabel(g.Semester); !ok {
		return curriculum.Target{}, fmt.Errorf("%w: %q（当前学制 %s）", ErrSemesterInvalid, g.Semester, system)
	}

	axis := curriculum.Axis(g.Axis)
	value := strings.TrimSpace(g.AxisValue)
	resolver := ws.store.Resolver()

	switch axis {
	case curriculum.AxisCourseType:
		if value == "" || (strict && !resolver.IsActiveCourseType(value)) {
			return curriculum.Target{}, fmt.Errorf("%w: course_type=%q", ErrAxisValueInvalid, value)
		}
	case curriculum.AxisEnrollmentType:
		if value == "" {
			value = curriculum.DefaultEnrollmentType
		}
		if defs := resolver.EnrollmentTypes(); strict && len(defs) > 0 && !containsCode(defs, value) {
			return curriculum.Target{}, fmt.Errorf("%w: enrollment_type=%q", ErrAxisValueInvalid, value)
		}
	default:
		return curriculum.Target{}, fmt.Errorf("%w: axis=%q", ErrInvalidInput, g.Axis)
	}

	return curriculum.Target{Semester: g.Semester, Axis: axis, Value: value}, nil
}

// courseRefs 按请求顺序取课程主数据（保留同批次内的重复，便于计入跳过数）
func (s *curriculumService) courseRefs(ctx context.Context, codes []string) ([]curriculum.CourseRef, error) {
	courses, err := s.repo.Course.GetByCodes(ctx, uniqueStrings(codes))
	if err != nil {
		s.logger.Error("查询课程主数据失败", zap.Error(err))
		return nil, err
	}
	byCode := make(map[string]model.Course, len(courses))
	for _, c := range courses {
		byCode[c.Code] = c
	}

	var missing []string
	refs := make([]curriculum.CourseRef, 0, len(codes))
	for _, code := range codes {
		c, ok := byCode[code]
		if !ok {
			missing = append(missing, code)
			continue
		}
		refs = append(refs, curriculum.CourseRef{
			Identity:    c.Code,
			Code:        c.Code,
			Name:        c.Name,
			Department:  c.Department,
			CreditValue: c.CreditValue,
		})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, strings.Join(uniqueStrings(missing), ", "))
	}
	return refs, nil
}

// render 生成返回视图：扁平列表 + 按学期分组
func (s *curriculumService) render(ws *workspace) *dto.CurriculumResponse {
	store := ws.store
	system := store.System()
	resolver := store.Resolver()
	entries := store.Entries()

	resp := &dto.CurriculumResponse{
		ID:                ws.header.CurriculumID,
		AcademicSystem:    string(system),
		Department:        ws.header.Department,
		Program:           ws.header.Program,
		AcademicYear:      ws.header.AcademicYear,
		Batch:             ws.header.Batch,
		Section:           ws.header.Section,
		Exists:            ws.exists(),
		CurriculumCourses: make([]dto.CurriculumEntry, 0, len(entries)),
		ExtraTerms:        store.ExtraTerms(),
		Terms:             make([]dto.TermView, 0),
	}
	if ws.exists() && !ws.header.UpdatedAt.IsZero() {
		resp.UpdatedAt = ws.header.UpdatedAt.Format("2006-01-02T15:04:05Z")
	}
	for _, e := range entries {
		resp.CurriculumCourses = append(resp.CurriculumCourses, toDTOEntry(e))
	}

	for _, tv := range resolver.Group(system, store.Terms(), entries) {
		view := dto.TermView{
			Number:             tv.Number,
			Label:              tv.Label,
			Removable:          tv.Number > system.DefaultTermCount(),
			CourseTypeSections: toSectionViews(resolver, tv.CourseTypeSections),
			EnrollmentSections: toSectionViews(resolver, tv.EnrollmentSections),
		}
		for _, sec := range view.CourseTypeSections {
			view.Credits += sec.Credits
		}
		for _, sec := range view.EnrollmentSections {
			view.Credits += sec.Credits
		}
		resp.Terms = append(resp.Terms, view)
	}
	return resp
}

func toSectionViews(resolver *curriculum.Resolver, sections []curriculum.Section) []dto.SectionView {
	out := make([]dto.SectionView, 0, len(sections))
	for _, sec := range sections {
		view := dto.SectionView{
			Axis:        string(sec.Axis),
			Code:        sec.Code,
			DisplayName: sec.DisplayName,
			Courses:     make([]dto.EntryView, 0, len(sec.Courses)),
			Clusters:    make([]dto.EntryView, 0, len(sec.Clusters)),
		}
		for _, e := range sec.Courses {
			view.Courses = append(view.Courses, dto.EntryView{CurriculumEntry: toDTOEntry(e), ShowBadge: resolver.ShowEnrollmentBadge(e)})
			view.Credits += e.Credits
		}
		for _, e := range sec.Clusters {
			view.Clusters = append(view.Clusters, dto.EntryView{CurriculumEntry: toDTOEntry(e), ShowBadge: resolver.ShowEnrollmentBadge(e)})
		}
		out = append(out, view)
	}
	return out
}

// ── 转换 ──

func toModelScope(scope dto.CurriculumScope) model.CurriculumScope {
	return model.CurriculumScope{
		Program:      strings.TrimSpace(scope.Program),
		AcademicYear: strings.TrimSpace(scope.AcademicYear),
		Batch:        strings.TrimSpace(scope.Batch),
		Section:      strings.TrimSpace(scope.Section),
	}
}

func fromModelRow(r model.CurriculumCourse) curriculum.Entry {
	return curriculum.Entry{
		Semester:       r.Semester,
		EntryKind:      curriculum.EntryKind(r.EntryKind),
		CourseType:     r.CourseType,
		EnrollmentType: r.EnrollmentType,
		Course:         r.Course,
		Credits:        r.Credits,
		CourseCode:     r.CourseCode,
		CourseName:     r.CourseName,
		Department:     r.Department,
		ClusterName:    r.ClusterName,
		MinCourses:     r.MinCourses,
		MaxCourses:     r.MaxCourses,
	}
}

func toModelRow(e curriculum.Entry) model.CurriculumCourse {
	return model.CurriculumCourse{
		Semester:       e.Semester,
		EntryKind:      string(e.EntryKind),
		CourseType:     e.CourseType,
		EnrollmentType: e.EnrollmentType,
		Course:         e.Course,
		Credits:        e.Credits,
		CourseCode:     e.CourseCode,
		CourseName:     e.CourseName,
		Department:     e.Department,
		ClusterName:    e.ClusterName,
		MinCourses:     e.MinCourses,
		MaxCourses:     e.MaxCourses,
	}
}

func fromDTOEntry(d dto.CurriculumEntry) curriculum.Entry {
	return curriculum.Entry{
		Semester:       d.Semester,
		EntryKind:      curriculum.EntryKind(d.EntryKind),
		CourseType:     d.CourseType,
		EnrollmentType: d.EnrollmentType,
		Course:         d.Course,
		Credits:        d.Credits,
		CourseCode:     d.CourseCode,
		CourseName:     d.CourseName,
		Department:     d.Department,
		ClusterName:    d.ClusterName,
		MinCourses:     d.MinCourses,
		MaxCourses:     d.MaxCourses,
	}
}

func toDTOEntry(e curriculum.Entry) dto.CurriculumEntry {
	return dto.CurriculumEntry{
		Semester:       e.Semester,
		EntryKind:      string(e.EntryKind),
		CourseType:     e.CourseType,
		EnrollmentType: e.EnrollmentType,
		Course:         e.Course,
		Credits:        e.Credits,
		CourseCode:     e.CourseCode,
		CourseName:     e.CourseName,
		Department:     e.Department,
		ClusterName:    e.ClusterName,
		MinCourses:     e.MinCourses,
		MaxCourses:     e.MaxCourses,
	}
}

func containsCode(defs []curriculum.TypeDef, code string) bool {
	for _, d := range defs {
		if d.Code == code {
			return true
		}
	}
	return false
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
